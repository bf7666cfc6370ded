// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the duckdb driver
	"github.com/rs/zerolog"

	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/models"
)

// DuckDBSource reads the dataset files through an in-memory DuckDB.
// CSV files are read as all-VARCHAR so the shared row rules see the same
// text the CSV source would.
type DuckDBSource struct {
	cfg    config.DatasetConfig
	duck   config.DuckDBConfig
	logger zerolog.Logger
}

// NewDuckDBSource creates a DuckDB-backed source.
func NewDuckDBSource(cfg config.DatasetConfig, duck config.DuckDBConfig, logger zerolog.Logger) *DuckDBSource {
	return &DuckDBSource{
		cfg:    cfg,
		duck:   duck,
		logger: logger.With().Str("component", "dataset").Str("source", config.SourceDuckDB).Logger(),
	}
}

// Name implements Source.
func (s *DuckDBSource) Name() string { return config.SourceDuckDB }

// connString builds an in-memory DSN. Extension auto-install stays off so
// loading never reaches the network.
func (s *DuckDBSource) connString() string {
	params := url.Values{}
	params.Set("autoinstall_known_extensions", "false")
	params.Set("autoload_known_extensions", "false")
	if s.duck.Threads > 0 {
		params.Set("threads", strconv.Itoa(s.duck.Threads))
	}
	if s.duck.MaxMemory != "" {
		params.Set("max_memory", s.duck.MaxMemory)
	}
	return ":memory:?" + params.Encode()
}

// Load implements Source.
func (s *DuckDBSource) Load(ctx context.Context) (*models.Snapshot, error) {
	conn, err := sql.Open("duckdb", s.connString())
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			s.logger.Warn().Err(cerr).Msg("Failed to close duckdb")
		}
	}()

	var t Tables
	files := []struct {
		table string
		name  string
		dst   *[][]string
	}{
		{TableMovies, s.cfg.MoviesFile, &t.Movies},
		{TableUsers, s.cfg.UsersFile, &t.Users},
		{TableWatchHistory, s.cfg.WatchHistoryFile, &t.WatchHistory},
		{TableRatings, s.cfg.RatingsFile, &t.Ratings},
	}

	for _, f := range files {
		path := s.cfg.Path(f.name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Str("table", f.table).Str("path", path).Msg("Dataset file not found, using empty table")
			continue
		}
		rows, err := s.readTable(ctx, conn, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.table, err)
		}
		*f.dst = rows
	}

	return BuildSnapshot(t, s.cfg.RatingColumn), nil
}

// tableQuery returns the SELECT for one file. The path is embedded as a
// quoted literal because table functions do not take bind parameters.
func (s *DuckDBSource) tableQuery(path string) string {
	lit := quoteLiteral(path)
	if s.duck.Format == "parquet" {
		return "SELECT * FROM read_parquet(" + lit + ")"
	}
	return "SELECT * FROM read_csv(" + lit +
		", header = true, all_varchar = true, null_padding = true, ignore_errors = true, quote = '\"', delim = ',')"
}

func (s *DuckDBSource) readTable(ctx context.Context, conn *sql.DB, path string) ([][]string, error) {
	rows, err := conn.QueryContext(ctx, s.tableQuery(path))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, trimRow(stringRow(raw)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// stringRow renders scanned values as text. NULL becomes "".
func stringRow(raw []any) []string {
	row := make([]string, len(raw))
	for i, v := range raw {
		switch val := v.(type) {
		case nil:
			row[i] = ""
		case string:
			row[i] = val
		case []byte:
			row[i] = string(val)
		case float64:
			row[i] = strconv.FormatFloat(val, 'f', -1, 64)
		case float32:
			row[i] = strconv.FormatFloat(float64(val), 'f', -1, 32)
		default:
			row[i] = fmt.Sprint(val)
		}
	}
	return row
}

// trimRow drops trailing NULL padding so short rows keep their length.
func trimRow(row []string) []string {
	n := len(row)
	for n > 0 && row[n-1] == "" {
		n--
	}
	return row[:n]
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

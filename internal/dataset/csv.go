// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/models"
)

// CSVSource reads the dataset from delimited text files.
type CSVSource struct {
	cfg    config.DatasetConfig
	logger zerolog.Logger
}

// NewCSVSource creates a CSV source over the files named in cfg.
func NewCSVSource(cfg config.DatasetConfig, logger zerolog.Logger) *CSVSource {
	return &CSVSource{
		cfg:    cfg,
		logger: logger.With().Str("component", "dataset").Str("source", config.SourceCSV).Logger(),
	}
}

// Name implements Source.
func (s *CSVSource) Name() string { return config.SourceCSV }

// Load implements Source.
func (s *CSVSource) Load(ctx context.Context) (*models.Snapshot, error) {
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
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := s.cfg.Path(f.name)
		rows, err := ReadCSVFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Str("table", f.table).Str("path", path).Msg("Dataset file not found, using empty table")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.table, err)
		}
		*f.dst = rows
	}

	return BuildSnapshot(t, s.cfg.RatingColumn), nil
}

// ReadCSVFile reads every row after the header line. Quoted fields may
// contain commas and rows may have differing field counts.
func ReadCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(f)
}

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadCSV reads every row after the header line from r. Each line is parsed
// on its own so an unbalanced quote only affects the row it appears in.
func ReadCSV(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]string
	header := true
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if header {
			header = false
			continue
		}
		rows = append(rows, parseLine(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return rows, nil
}

// parseLine splits one line into fields. A line the reader rejects is kept
// as a single field so the row parsers count it as skipped.
func parseLine(line string) []string {
	reader := csv.NewReader(strings.NewReader(line))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if err != nil {
		return []string{line}
	}
	// An unterminated quote runs to the end of the line.
	if last := len(record) - 1; last >= 0 {
		record[last] = strings.TrimSuffix(record[last], "\n")
	}
	return record
}

// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package dataset

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierec/internal/config"
)

func TestDuckDBSource_LoadCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "movies.csv", "id,name,genre\n1,\"Heat, Part One\",Crime\n2,Up,Animation\n")
	writeFile(t, dir, "users.csv", "id,username,password\n1,alice,pw1\n")
	writeFile(t, dir, "watch_history.csv", "user_id,movie_id,name\n1,1,Heat\n1,2,Up\n")
	writeFile(t, dir, "movie.csv", "id,name,genre,rating\n1,Heat,Crime,8.0\n2,Up,Animation,NULL\n")

	src := NewDuckDBSource(testDatasetConfig(dir), config.DuckDBConfig{Format: "csv", Threads: 1}, zerolog.Nop())
	snap, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := snap.Catalog.Name(1); got != "Heat" {
		// The rating file row replaces the catalog name.
		t.Errorf("Name(1) = %q, want Heat", got)
	}
	if snap.Catalog.Len() != 2 {
		t.Errorf("catalog len = %d, want 2", snap.Catalog.Len())
	}
	if _, ok := snap.UserByUsername("alice"); !ok {
		t.Error("alice should be loaded")
	}
	if len(snap.History.Watched(1)) != 2 {
		t.Errorf("watched = %v, want 2 movies", snap.History.Watched(1))
	}
	if len(snap.Ratings) != 2 {
		t.Errorf("rating samples = %d, want 2", len(snap.Ratings))
	}
}

func TestDuckDBSource_MalformedRowIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "movies.csv",
		"id,name,genre\n1,Heat,Crime\n2,Up,Animation,extra,columns,here\n3,Ronin,Action\n4,Alien,Horror\n5,Jaws,Thriller\n")

	src := NewDuckDBSource(testDatasetConfig(dir), config.DuckDBConfig{Format: "csv", Threads: 1}, zerolog.Nop())
	snap, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v, want malformed row skipped", err)
	}
	for _, id := range []int{1, 3, 4, 5} {
		if _, ok := snap.Catalog.Get(id); !ok {
			t.Errorf("movie %d missing after malformed row", id)
		}
	}
}

func TestDuckDBSource_MissingFiles(t *testing.T) {
	src := NewDuckDBSource(testDatasetConfig(t.TempDir()), config.DuckDBConfig{Format: "csv"}, zerolog.Nop())
	snap, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Catalog.Len() != 0 || snap.UserCount() != 0 {
		t.Error("missing files should yield an empty snapshot")
	}
}

func TestDuckDBSource_Query(t *testing.T) {
	csvSrc := NewDuckDBSource(config.DatasetConfig{}, config.DuckDBConfig{Format: "csv"}, zerolog.Nop())
	q := csvSrc.tableQuery("/data/o'brien.csv")
	if !strings.Contains(q, "read_csv('/data/o''brien.csv'") {
		t.Errorf("csv query = %q, want escaped literal", q)
	}
	for _, want := range []string{"all_varchar = true", "ignore_errors = true"} {
		if !strings.Contains(q, want) {
			t.Errorf("csv query = %q, want %s", q, want)
		}
	}

	pqSrc := NewDuckDBSource(config.DatasetConfig{}, config.DuckDBConfig{Format: "parquet"}, zerolog.Nop())
	if q := pqSrc.tableQuery("/data/movies.parquet"); q != "SELECT * FROM read_parquet('/data/movies.parquet')" {
		t.Errorf("parquet query = %q", q)
	}
}

func TestDuckDBSource_ConnString(t *testing.T) {
	src := NewDuckDBSource(config.DatasetConfig{}, config.DuckDBConfig{Threads: 2, MaxMemory: "256MB"}, zerolog.Nop())
	dsn := src.connString()
	for _, want := range []string{":memory:?", "threads=2", "max_memory=256MB", "autoinstall_known_extensions=false"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("connString() = %q, missing %q", dsn, want)
		}
	}
}

func TestStringRowAndTrim(t *testing.T) {
	row := trimRow(stringRow([]any{"1", []byte("Heat"), nil, 8.5, nil}))
	want := []string{"1", "Heat", "", "8.5"}
	if strings.Join(row, "|") != strings.Join(want, "|") {
		t.Errorf("row = %q, want %q", row, want)
	}
}

// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate runs the loader from an empty directory so no stray config.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Dataset.Source != SourceCSV {
		t.Errorf("Dataset.Source = %q, want csv", cfg.Dataset.Source)
	}
	if cfg.Server.Port != 8480 {
		t.Errorf("Server.Port = %d, want 8480", cfg.Server.Port)
	}
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("Security.RateLimitWindow = %v, want 1m", cfg.Security.RateLimitWindow)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := isolate(t)

	yaml := `
dataset:
  source: duckdb
  dir: /srv/movies
duckdb:
  format: parquet
recommend:
  neighbor_cap: 3
  top_n: 5
server:
  port: 9090
  read_timeout: 5s
`
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Dataset.Source != SourceDuckDB || cfg.Dataset.Dir != "/srv/movies" {
		t.Errorf("Dataset = %+v, want duckdb at /srv/movies", cfg.Dataset)
	}
	if cfg.DuckDB.Format != "parquet" {
		t.Errorf("DuckDB.Format = %q, want parquet", cfg.DuckDB.Format)
	}
	if cfg.Recommend.NeighborCap != 3 || cfg.Recommend.TopN != 5 {
		t.Errorf("Recommend = %+v, want cap 3 top 5", cfg.Recommend)
	}
	if cfg.Recommend.PartitionCount != 4 {
		t.Errorf("unset Recommend.PartitionCount = %d, want default 4", cfg.Recommend.PartitionCount)
	}
	if cfg.Server.Port != 9090 || cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server = %+v, want port 9090 read 5s", cfg.Server)
	}
}

func TestLoadWithKoanf_DefaultPathDiscovery(t *testing.T) {
	dir := isolate(t)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("recommend:\n  top_n: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Recommend.TopN != 3 {
		t.Errorf("Recommend.TopN = %d, want 3 from config.yaml", cfg.Recommend.TopN)
	}
}

func TestLoadWithKoanf_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("MOVIEREC_DATA_DIR", "/var/lib/movierec")
	t.Setenv("RECOMMEND_NEIGHBOR_CAP", "4")
	t.Setenv("MONGO_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SOME_UNRELATED_VAR", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 from env", cfg.Server.Port)
	}
	if cfg.Dataset.Dir != "/var/lib/movierec" {
		t.Errorf("Dataset.Dir = %q", cfg.Dataset.Dir)
	}
	if cfg.Recommend.NeighborCap != 4 {
		t.Errorf("Recommend.NeighborCap = %d, want 4", cfg.Recommend.NeighborCap)
	}
	if cfg.Mongo.Timeout != 2*time.Second {
		t.Errorf("Mongo.Timeout = %v, want 2s", cfg.Mongo.Timeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ValidationFailure(t *testing.T) {
	isolate(t)
	t.Setenv("MOVIEREC_DATA_SOURCE", "mongo")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("expected validation error for mongo source without uri")
	}
	if !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("error = %q, want validation failure", err.Error())
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"MOVIEREC_DATA_SOURCE", "dataset.source"},
		{"HTTP_PORT", "server.port"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"RECOMMEND_PARTITIONS", "recommend.partition_count"},
		{"DUCKDB_MAX_MEMORY", "duckdb.max_memory"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

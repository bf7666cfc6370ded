// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package config

import (
	"net"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tomtom215/movierec/internal/recommend"
)

// Dataset source names.
const (
	SourceCSV    = "csv"
	SourceDuckDB = "duckdb"
	SourceMongo  = "mongo"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in defaults for every setting
//  2. Config File: optional YAML file (CONFIG_PATH or config.yaml)
//  3. Environment Variables: explicit mapping table, highest priority
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	engineCfg := cfg.Recommend.EngineConfig()
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	DuckDB    DuckDBConfig    `koanf:"duckdb"`
	Mongo     MongoConfig     `koanf:"mongo"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig selects where the snapshot is loaded from.
//
// Environment Variables:
//   - MOVIEREC_DATA_SOURCE: csv, duckdb or mongo (default: csv)
//   - MOVIEREC_DATA_DIR: directory holding the dataset files (default: data)
//   - MOVIEREC_MOVIES_FILE, MOVIEREC_USERS_FILE, MOVIEREC_WATCH_HISTORY_FILE,
//     MOVIEREC_RATINGS_FILE: file names inside the data directory
//   - MOVIEREC_RATING_COLUMN: zero-based column of the rating in the ratings file (default: 3)
type DatasetConfig struct {
	Source           string `koanf:"source" validate:"oneof=csv duckdb mongo"`
	Dir              string `koanf:"dir"`
	MoviesFile       string `koanf:"movies_file" validate:"required"`
	UsersFile        string `koanf:"users_file" validate:"required"`
	WatchHistoryFile string `koanf:"watch_history_file" validate:"required"`
	RatingsFile      string `koanf:"ratings_file" validate:"required"`
	RatingColumn     int    `koanf:"rating_column" validate:"min=1,max=64"`
}

// Path joins a dataset file name onto the data directory.
func (d DatasetConfig) Path(name string) string {
	if filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// DuckDBConfig configures the DuckDB dataset source.
type DuckDBConfig struct {
	// Format is the on-disk format of the dataset files: csv or parquet.
	Format string `koanf:"format" validate:"oneof=csv parquet"`

	// MaxMemory caps DuckDB memory use, e.g. "512MB". Empty keeps DuckDB's default.
	MaxMemory string `koanf:"max_memory"`

	// Threads sets DuckDB worker threads; 0 keeps DuckDB's default.
	Threads int `koanf:"threads" validate:"min=0,max=256"`
}

// MongoConfig configures the MongoDB dataset source.
type MongoConfig struct {
	URI      string        `koanf:"uri"`
	Database string        `koanf:"database"`
	Timeout  time.Duration `koanf:"timeout"`
}

// RecommendConfig mirrors recommend.Config for file and env loading.
type RecommendConfig struct {
	PartitionCount int `koanf:"partition_count" validate:"min=1,max=1024"`
	NeighborCap    int `koanf:"neighbor_cap" validate:"min=1"`
	TopN           int `koanf:"top_n" validate:"min=1"`
	DiscoveryCount int `koanf:"discovery_count" validate:"min=1"`
}

// EngineConfig converts to the engine's configuration type.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		PartitionCount: r.PartitionCount,
		NeighborCap:    r.NeighborCap,
		TopN:           r.TopN,
		DiscoveryCount: r.DiscoveryCount,
	}
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CacheSize bounds the per-user result cache; 0 disables it.
	CacheSize int `koanf:"cache_size" validate:"min=0"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds rate limiting, CORS and login throttling settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// LoginFailureBurst is the number of failed logins allowed per username
	// before attempts are refused.
	LoginFailureBurst int `koanf:"login_failure_burst" validate:"min=1"`

	// LoginFailureInterval is how often one failed-login allowance is restored.
	LoginFailureInterval time.Duration `koanf:"login_failure_interval"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error, disabled (default: info)
//   - LOG_FORMAT: json or console (default: console for the CLI, json otherwise)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

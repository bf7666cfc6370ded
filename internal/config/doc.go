// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package config provides centralized configuration management for Movierec.

Configuration is assembled by LoadWithKoanf from three layers, each overriding
the previous one:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/movierec/config.yaml or /etc/movierec/config.yml
 3. Environment variables, through an explicit mapping table

Unmapped environment variables are ignored.

# Configuration Structure

  - DatasetConfig: dataset source (csv, duckdb, mongo) and file names
  - DuckDBConfig: file format and resource limits for the DuckDB source
  - MongoConfig: connection settings for the MongoDB source
  - RecommendConfig: partition count, neighbour cap, list sizes
  - ServerConfig: HTTP listener and timeouts for serve mode
  - SecurityConfig: rate limiting, CORS, failed-login throttling
  - LoggingConfig: zerolog level, format and caller output

# Environment Variables

Dataset:
  - MOVIEREC_DATA_SOURCE: csv, duckdb or mongo (default: csv)
  - MOVIEREC_DATA_DIR: dataset directory (default: data)
  - MOVIEREC_MOVIES_FILE: (default: movies.csv)
  - MOVIEREC_USERS_FILE: (default: users.csv)
  - MOVIEREC_WATCH_HISTORY_FILE: (default: watch_history.csv)
  - MOVIEREC_RATINGS_FILE: (default: movie.csv)
  - MOVIEREC_RATING_COLUMN: zero-based rating column (default: 3)

DuckDB:
  - DUCKDB_FORMAT: csv or parquet (default: csv)
  - DUCKDB_MAX_MEMORY: e.g. 512MB
  - DUCKDB_THREADS: worker threads (default: DuckDB decides)

MongoDB:
  - MONGO_URI: connection string, required for the mongo source
  - MONGO_DATABASE: (default: movierec)
  - MONGO_TIMEOUT: connect and query timeout (default: 10s)

Recommendation:
  - RECOMMEND_PARTITIONS: aggregation partitions (default: 4)
  - RECOMMEND_NEIGHBOR_CAP: similar users consulted (default: 2)
  - RECOMMEND_TOP_N: list length (default: 10)
  - RECOMMEND_DISCOVERY_COUNT: discovery sample size (default: 10)

HTTP Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8480)
  - HTTP_READ_TIMEOUT (default: 15s), HTTP_WRITE_TIMEOUT (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT (default: 10s)
  - HTTP_CACHE_SIZE: per-user result cache entries, 0 disables (default: 1024)

Security:
  - RATE_LIMIT_REQUESTS (default: 100), RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)
  - CORS_ORIGINS: comma-separated (default: *)
  - LOGIN_FAILURE_BURST (default: 5), LOGIN_FAILURE_INTERVAL (default: 30s)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error, disabled (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller (default: false)

# Usage Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatalf("Configuration error: %v", err)
	}
	engine, err := recommend.NewEngine(snapshot, cfg.Recommend.EngineConfig(), logger)
*/
package config

// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package config

import (
	"fmt"

	"github.com/tomtom215/movierec/internal/validation"
)

// Validate checks struct tags first, then rules that span fields.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	validators := []func() error{
		c.validateDataset,
		c.validateServer,
		c.validateSecurity,
	}
	for _, validator := range validators {
		if err := validator(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateDataset() error {
	switch c.Dataset.Source {
	case SourceMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("mongo.uri is required when dataset.source is %s", SourceMongo)
		}
		if c.Mongo.Database == "" {
			return fmt.Errorf("mongo.database is required when dataset.source is %s", SourceMongo)
		}
		if c.Mongo.Timeout <= 0 {
			return fmt.Errorf("mongo.timeout must be positive, got %s", c.Mongo.Timeout)
		}
	case SourceCSV, SourceDuckDB:
		if c.Dataset.Dir == "" {
			return fmt.Errorf("dataset.dir is required when dataset.source is %s", c.Dataset.Source)
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive, got %s", c.Server.WriteTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled && c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
	}
	if c.Security.LoginFailureInterval <= 0 {
		return fmt.Errorf("security.login_failure_interval must be positive, got %s", c.Security.LoginFailureInterval)
	}
	return nil
}

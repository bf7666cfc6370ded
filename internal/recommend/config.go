// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// PartitionCount is the number of concurrent partitions used by the
	// rating aggregation pipeline.
	// Default: 4
	PartitionCount int `json:"partition_count"`

	// NeighborCap is the maximum number of similar users consulted by the
	// collaborative recommender.
	// Default: 2
	NeighborCap int `json:"neighbor_cap"`

	// TopN bounds the top-rated, collaborative and per-genre listings.
	// Default: 10
	TopN int `json:"top_n"`

	// DiscoveryCount is the default sample size for discovery.
	// Default: 10
	DiscoveryCount int `json:"discovery_count"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		PartitionCount: 4,
		NeighborCap:    2,
		TopN:           10,
		DiscoveryCount: 10,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.PartitionCount < 1 {
		return fmt.Errorf("partition_count must be positive, got %d", c.PartitionCount)
	}
	if c.NeighborCap < 1 {
		return fmt.Errorf("neighbor_cap must be positive, got %d", c.NeighborCap)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.DiscoveryCount < 1 {
		return fmt.Errorf("discovery_count must be positive, got %d", c.DiscoveryCount)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

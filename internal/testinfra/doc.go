// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to run a real MongoDB for the mongo
// dataset source, so the BSON decoding path is tested against the server
// rather than a mock:
//
//	func TestMongoSource(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mongoC, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongoC)
//	    // seed collections, then load through dataset.NewMongoSource
//	}
//
// All files carry the integration build tag:
//
//	go test -tags integration ./internal/dataset/...
package testinfra

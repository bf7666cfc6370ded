// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package main is the entry point for movierec.
//
// Usage:
//
//	movierec                 interactive session on stdin/stdout
//	movierec serve           read-only JSON API with Basic auth
//	movierec hash-password   read a password from stdin, print its bcrypt hash
//	movierec version         print the version
//
// Both query modes load configuration (see internal/config), read the
// dataset through the configured source (csv, duckdb or mongo) once, and
// answer every query from that snapshot.
//
// # Signal Handling
//
// serve stops on SIGINT or SIGTERM: the HTTP server stops accepting
// connections and waits up to HTTP_SHUTDOWN_TIMEOUT for in-flight requests.
//
// # Example Usage
//
//	export MOVIEREC_DATA_DIR=./data
//	./movierec
//
//	export MOVIEREC_DATA_SOURCE=mongo
//	export MONGO_URI=mongodb://localhost:27017
//	export HTTP_PORT=8480
//	./movierec serve
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tomtom215/movierec/internal/auth"
	"github.com/tomtom215/movierec/internal/cli"
	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var errUsage = errors.New("usage: movierec [serve|hash-password|version]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logging.Error().Err(err).Msg("movierec failed")
		os.Exit(1)
	}
}

// run dispatches the subcommand in args.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}

	switch mode {
	case "version":
		_, err := fmt.Fprintln(stdout, Version)
		return err
	case "hash-password":
		return hashPassword(stdin, stdout)
	case "", "serve":
	default:
		return fmt.Errorf("unknown command %q: %w", mode, errUsage)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	a, err := bootstrap(ctx, cfg, logging.Logger())
	if err != nil {
		return err
	}

	if mode == "serve" {
		return serve(ctx, cfg, a)
	}
	return interactive(ctx, a, stdin, stdout)
}

// interactive runs one CLI session. Logs go to stderr through the global
// logger so they never interleave with the menu on stdout.
func interactive(ctx context.Context, a *app, stdin io.Reader, stdout io.Writer) error {
	logger := logging.With().Str("component", "cli").Logger()
	session := cli.NewSession(a.engine, a.authenticator, stdin, stdout, logger)
	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}

func hashPassword(stdin io.Reader, stdout io.Writer) error {
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return errors.New("password must not be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hash)
	return err
}

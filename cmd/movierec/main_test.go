// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierec/internal/auth"
	"github.com/tomtom215/movierec/internal/config"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"movies.csv":        "id,name,genre\n1,Alpha,Drama\n2,Bravo,Drama\n3,Charlie,Comedy\n",
		"users.csv":         "id,username,password\n1,ann,secret\n2,ben,pw\n",
		"watch_history.csv": "user_id,movie_id,name\n1,1,Alpha\n2,1,Alpha\n2,3,Charlie\n",
		"movie.csv":         "id,name,genre,rating\n1,Alpha,Drama,8\n2,Bravo,Drama,6\n3,Charlie,Comedy,9\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func isolate(t *testing.T, dataDir string) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("MOVIEREC_DATA_DIR", dataDir)
	t.Setenv("LOG_LEVEL", "disabled")
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"version"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(out.String()) != Version {
		t.Errorf("output = %q, want %q", out.String(), Version)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), []string{"bogus"}, strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, errUsage) {
		t.Errorf("err = %v, want errUsage", err)
	}
}

func TestRun_HashPassword(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"hash-password"}, strings.NewReader("hunter22\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	hash := strings.TrimSpace(out.String())
	if !auth.IsBcryptHash(hash) {
		t.Fatalf("output %q is not a bcrypt hash", hash)
	}
	if !auth.VerifyCredential(hash, "hunter22") {
		t.Error("hash does not verify the original password")
	}

	if err := run(context.Background(), []string{"hash-password"}, strings.NewReader("\n"), &bytes.Buffer{}); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestRun_Interactive(t *testing.T) {
	isolate(t, writeDataset(t))

	var out bytes.Buffer
	in := strings.NewReader("ann secret 1 2 5\n")
	if err := run(context.Background(), nil, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Welcome ann!", "TOP RATED MOVIES:", "- Charlie (9)", "RECOMMENDATIONS:", "- Charlie"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	isolate(t, writeDataset(t))
	t.Setenv("MOVIEREC_DATA_SOURCE", "mongo")

	err := run(context.Background(), nil, strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "mongo.uri") {
		t.Errorf("err = %v, want mongo.uri validation failure", err)
	}
}

func TestBootstrap(t *testing.T) {
	isolate(t, writeDataset(t))
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	a, err := bootstrap(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if a.source != "csv" {
		t.Errorf("source = %q, want csv", a.source)
	}
	stats := a.engine.Stats()
	if stats.Movies != 3 || stats.Users != 2 || stats.WatchEvents != 3 || stats.Ratings != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if _, err := a.authenticator.Authenticate("ben", "pw"); err != nil {
		t.Errorf("Authenticate: %v", err)
	}
}

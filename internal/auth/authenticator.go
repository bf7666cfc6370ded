// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/metrics"
	"github.com/tomtom215/movierec/internal/models"
)

var (
	// ErrInvalidCredentials is returned for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTooManyAttempts is returned while a username is throttled.
	ErrTooManyAttempts = errors.New("too many failed login attempts")

	// ErrNoCredentials is returned when a request carries no credentials.
	ErrNoCredentials = errors.New("no credentials provided")
)

// Channels recorded with each attempt.
const (
	ChannelCLI  = "cli"
	ChannelHTTP = "http"
)

// Metric label values for metrics.RecordAuthAttempt.
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultThrottled = "throttled"
)

// dummyHash is compared against when the username is unknown.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("movierec-timing-equalizer"), bcrypt.DefaultCost)

// UserLookup finds a user by login name. *models.Snapshot satisfies it.
type UserLookup interface {
	UserByUsername(username string) (models.User, bool)
}

// Config holds failed-login throttling settings.
type Config struct {
	// FailureBurst is the number of failures allowed before throttling.
	FailureBurst int

	// FailureInterval is how often one allowance is restored.
	FailureInterval time.Duration
}

// DefaultConfig returns the default throttling settings.
func DefaultConfig() Config {
	return Config{
		FailureBurst:    5,
		FailureInterval: 30 * time.Second,
	}
}

// Attempt is one credential check.
type Attempt struct {
	Username   string
	Password   string
	Channel    string
	RemoteAddr string
}

// Authenticator verifies credentials against a user table.
type Authenticator struct {
	users    UserLookup
	limiter  *FailureLimiter
	security *logging.SecurityLogger
}

// NewAuthenticator creates an authenticator over users.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAuthenticator(users UserLookup, cfg Config, logger zerolog.Logger) *Authenticator {
	if cfg.FailureBurst <= 0 {
		cfg.FailureBurst = DefaultConfig().FailureBurst
	}
	if cfg.FailureInterval <= 0 {
		cfg.FailureInterval = DefaultConfig().FailureInterval
	}
	return &Authenticator{
		users:    users,
		limiter:  NewFailureLimiter(cfg.FailureBurst, cfg.FailureInterval),
		security: logging.NewSecurityLogger(logger),
	}
}

// Authenticate checks an interactive login.
func (a *Authenticator) Authenticate(username, password string) (models.User, error) {
	return a.Check(Attempt{Username: username, Password: password, Channel: ChannelCLI})
}

// Check verifies one attempt. A successful login clears the username's
// failure history.
func (a *Authenticator) Check(at Attempt) (models.User, error) {
	if a.limiter.Blocked(at.Username) {
		metrics.RecordAuthAttempt(ResultThrottled)
		a.security.LogLoginThrottled(at.Username, at.Channel, at.RemoteAddr)
		return models.User{}, ErrTooManyAttempts
	}

	user, ok := a.users.UserByUsername(at.Username)
	if !ok {
		// Burn the same bcrypt cost as a real check.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(at.Password))
		return models.User{}, a.fail(at, "unknown_user")
	}

	if !VerifyCredential(user.Credential, at.Password) {
		return models.User{}, a.fail(at, "bad_password")
	}

	a.limiter.Reset(at.Username)
	metrics.RecordAuthAttempt(ResultSuccess)
	a.security.LogLoginSuccess(user.ID, user.Username, at.Channel, at.RemoteAddr)
	return user, nil
}

func (a *Authenticator) fail(at Attempt, reason string) error {
	a.limiter.RecordFailure(at.Username)
	metrics.RecordAuthAttempt(ResultFailure)
	a.security.LogLoginFailure(at.Username, at.Channel, at.RemoteAddr, reason)
	return ErrInvalidCredentials
}

// IsBcryptHash reports whether a stored credential is a bcrypt hash.
func IsBcryptHash(credential string) bool {
	return strings.HasPrefix(credential, "$2a$") ||
		strings.HasPrefix(credential, "$2b$") ||
		strings.HasPrefix(credential, "$2y$")
}

// VerifyCredential compares password to a stored credential.
func VerifyCredential(stored, password string) bool {
	if IsBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// HashPassword returns a bcrypt hash suitable for the users file.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

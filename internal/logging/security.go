// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package logging

import (
	"github.com/rs/zerolog"
)

// LoginEvent describes one credential check.
type LoginEvent struct {
	// Event is login_success, login_failed or login_throttled.
	Event    string
	UserID   int
	Username string
	// Channel is where the attempt came from: cli or http.
	Channel string
	// RemoteAddr is the client address for HTTP attempts.
	RemoteAddr string
	Reason     string
}

// SecurityLogger writes authentication events with usernames masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a security logger on top of logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// LogEvent writes ev. Failures are logged at warn level.
func (l *SecurityLogger) LogEvent(ev *LoginEvent) {
	e := l.logger.Info()
	if ev.Event != "login_success" {
		e = l.logger.Warn()
	}

	e = e.Str("event", ev.Event).
		Str("username", SanitizeUsername(ev.Username))
	if ev.UserID != 0 {
		e = e.Int("user_id", ev.UserID)
	}
	if ev.Channel != "" {
		e = e.Str("channel", ev.Channel)
	}
	if ev.RemoteAddr != "" {
		e = e.Str("remote_addr", ev.RemoteAddr)
	}
	if ev.Reason != "" {
		e = e.Str("reason", ev.Reason)
	}
	e.Msg("authentication event")
}

// LogLoginSuccess logs a successful login.
func (l *SecurityLogger) LogLoginSuccess(userID int, username, channel, remoteAddr string) {
	l.LogEvent(&LoginEvent{
		Event:      "login_success",
		UserID:     userID,
		Username:   username,
		Channel:    channel,
		RemoteAddr: remoteAddr,
	})
}

// LogLoginFailure logs a rejected login.
func (l *SecurityLogger) LogLoginFailure(username, channel, remoteAddr, reason string) {
	l.LogEvent(&LoginEvent{
		Event:      "login_failed",
		Username:   username,
		Channel:    channel,
		RemoteAddr: remoteAddr,
		Reason:     reason,
	})
}

// LogLoginThrottled logs an attempt refused by the failure limiter.
func (l *SecurityLogger) LogLoginThrottled(username, channel, remoteAddr string) {
	l.LogEvent(&LoginEvent{
		Event:      "login_throttled",
		Username:   username,
		Channel:    channel,
		RemoteAddr: remoteAddr,
	})
}

// SanitizeUsername masks a username, keeping the first 2 characters.
// Example: "johndoe" -> "jo***"
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}

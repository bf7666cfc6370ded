// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package cli implements the interactive terminal session: a login prompt
// followed by a numbered menu over the recommendation engine.
//
// Input is read as whitespace-separated tokens, so usernames and passwords
// cannot contain spaces. End of input ends the session at any prompt.
package cli

// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package auth verifies user credentials against the loaded user table.

Key Components:

  - Authenticator: checks a username and password, for both the interactive
    session and HTTP Basic requests
  - FailureLimiter: token bucket per username (golang.org/x/time/rate) that
    refuses further attempts once too many have failed
  - Middleware: HTTP Basic authentication that places the user in the
    request context

Credentials:

A stored credential beginning with $2a$, $2b$ or $2y$ is treated as a bcrypt
hash and verified with golang.org/x/crypto/bcrypt. Anything else is compared
to the supplied password with crypto/subtle in constant time. Unknown users
still pay for a bcrypt comparison so response time does not reveal which
usernames exist.

Unknown users and wrong passwords both return ErrInvalidCredentials.

Usage Example:

	a := auth.NewAuthenticator(snapshot, auth.DefaultConfig(), logger)
	user, err := a.Authenticate(username, password)
	switch {
	case errors.Is(err, auth.ErrTooManyAttempts):
	    // back off
	case err != nil:
	    fmt.Fprintln(out, "Invalid login")
	}
*/
package auth

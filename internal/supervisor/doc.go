// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package supervisor runs the long-lived parts of movierec serve under a
suture v4 supervision tree.

	root ("movierec")
	└── api-layer
	    └── HTTPServerService

The dataset snapshot is loaded before the tree starts and never changes, so
the only supervised work is the HTTP listener. A listener that fails (for
example a transient bind error) is restarted with suture's backoff; after
FailureThreshold failures within the decay window the supervisor waits
FailureBackoff before trying again.

Supervisor events are logged through sutureslog, which takes an
*slog.Logger. logging.NewSlogLogger provides one that writes through the
global zerolog logger.

Shutdown is driven by the context passed to Serve. Cancelling it stops the
HTTP server gracefully within ShutdownTimeout.
*/
package supervisor

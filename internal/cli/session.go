// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierec/internal/auth"
	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/models"
	"github.com/tomtom215/movierec/internal/recommend"
)

// Menu choices.
const (
	ChoiceTopRated = iota + 1
	ChoiceHistory
	ChoiceGenre
	ChoiceSurprise
	ChoiceExit
)

const menu = "\n1. Top Rated Movies\n" +
	"2. Watch History Recommendations\n" +
	"3. Genre Based Recommendations\n" +
	"4. Surprise Me\n" +
	"5. Exit\n" +
	"Choice: "

// Authenticator checks interactive logins.
type Authenticator interface {
	Authenticate(username, password string) (models.User, error)
}

// Session is one interactive login plus menu loop.
type Session struct {
	In  io.Reader
	Out io.Writer

	engine *recommend.Engine
	auth   Authenticator
	logger zerolog.Logger

	// now is swapped in tests for deterministic timings.
	now func() time.Time
}

// NewSession creates a session reading from in and writing to out.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSession(engine *recommend.Engine, authenticator Authenticator, in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		In:     in,
		Out:    out,
		engine: engine,
		auth:   authenticator,
		logger: logger.With().Str("component", "cli").Logger(),
		now:    time.Now,
	}
}

// Run logs the user in and serves menu choices until Exit, end of input or
// ctx cancellation. A failed login is not an error.
func (s *Session) Run(ctx context.Context) error {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	scanner := bufio.NewScanner(s.In)
	scanner.Split(bufio.ScanWords)

	user, ok, err := s.login(scanner)
	if err != nil || !ok {
		return err
	}

	s.logger.Info().
		Str("correlation_id", logging.CorrelationIDFromContext(ctx)).
		Int("user_id", user.ID).
		Msg("Interactive session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.print(menu)

		token, ok := next(scanner)
		if !ok {
			return scanner.Err()
		}
		choice, err := strconv.Atoi(token)
		if err != nil || choice < ChoiceTopRated || choice > ChoiceExit {
			s.printf("\nInvalid choice %q, please enter a number from 1 to 5.\n", token)
			continue
		}
		if choice == ChoiceExit {
			return nil
		}

		start := s.now()
		s.dispatch(ctx, choice, user)
		s.printf("\nCompleted in %d ms\n", s.now().Sub(start).Milliseconds())
	}
}

func (s *Session) login(scanner *bufio.Scanner) (models.User, bool, error) {
	s.print("Username: ")
	username, ok := next(scanner)
	if !ok {
		return models.User{}, false, scanner.Err()
	}
	s.print("Password: ")
	password, ok := next(scanner)
	if !ok {
		return models.User{}, false, scanner.Err()
	}

	user, err := s.auth.Authenticate(username, password)
	switch {
	case errors.Is(err, auth.ErrTooManyAttempts):
		s.print("Too many failed attempts, try again later\n")
		return models.User{}, false, nil
	case err != nil:
		s.print("Invalid login\n")
		return models.User{}, false, nil
	}

	s.printf("\nWelcome %s!\n", user.Username)
	return user, true, nil
}

func (s *Session) dispatch(ctx context.Context, choice int, user models.User) {
	switch choice {
	case ChoiceTopRated:
		s.topRated(ctx)
	case ChoiceHistory:
		s.history(ctx, user)
	case ChoiceGenre:
		s.genre(ctx, user)
	case ChoiceSurprise:
		s.surprise(ctx, user)
	}
}

func (s *Session) topRated(ctx context.Context) {
	s.print("\nTOP RATED MOVIES:\n\n")
	for _, m := range s.engine.TopRated(ctx) {
		s.printf("- %s (%s)\n", m.Name, FormatRating(m.Score))
	}
}

func (s *Session) history(ctx context.Context, user models.User) {
	recs, err := s.engine.Recommend(ctx, user.ID)
	s.print("\nRECOMMENDATIONS:\n\n")
	// A user without watch history has no neighbours either.
	if errors.Is(err, recommend.ErrUserNotIndexed) || len(recs) == 0 {
		s.print("No strong similarity found.\n")
		return
	}
	for _, m := range recs {
		s.printf("- %s\n", m.Name)
	}
}

func (s *Session) genre(ctx context.Context, user models.User) {
	res := s.engine.GenreRecommendations(ctx, user.ID)
	if !res.HasAffinity {
		s.print("No watch history available.\n")
		return
	}
	s.printf("\nFAVOURITE GENRE: %s\n\n", res.Genre)
	for _, m := range res.Movies {
		s.printf("- %s\n", m.Name)
	}
}

func (s *Session) surprise(ctx context.Context, user models.User) {
	s.print("\nEXPLORE THE UNEXPLORED:\n\n")
	for _, m := range s.engine.Discover(ctx, user.ID, 0) {
		s.printf("- %s\n", m.Name)
	}
}

// FormatRating renders a mean rating with six significant digits.
func FormatRating(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func next(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.Out, text)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.Out, format, args...)
}

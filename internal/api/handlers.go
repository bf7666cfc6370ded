// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/movierec/internal/auth"
	"github.com/tomtom215/movierec/internal/cache"
	"github.com/tomtom215/movierec/internal/models"
	"github.com/tomtom215/movierec/internal/recommend"
)

// MaxDiscoverCount bounds the discover sample size.
const MaxDiscoverCount = 100

type userIDKey struct{}

// recommendResult is a cached collaborative answer, error included.
type recommendResult struct {
	movies []recommend.RankedMovie
	err    error
}

// Handler serves the query endpoints over one engine.
type Handler struct {
	engine    *recommend.Engine
	source    string
	version   string
	startTime time.Time

	// nil when caching is disabled
	recommendCache *cache.LRU[int, recommendResult]
	genreCache     *cache.LRU[int, recommend.GenreResult]
}

// NewHandler creates a handler. source and version are reported by Health.
// cacheSize bounds the per-user recommendation and genre caches; 0 disables
// them. Discover is random and never cached.
func NewHandler(engine *recommend.Engine, source, version string, cacheSize int) *Handler {
	h := &Handler{
		engine:    engine,
		source:    source,
		version:   version,
		startTime: time.Now(),
	}
	if cacheSize > 0 {
		h.recommendCache = cache.NewLRU[int, recommendResult](cacheSize)
		h.genreCache = cache.NewLRU[int, recommend.GenreResult](cacheSize)
	}
	return h
}

// DiscoverRequest holds the discover query parameters.
type DiscoverRequest struct {
	Count int `validate:"min=1,max=100"`
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.engine.Stats()

	status := "healthy"
	if stats.Movies == 0 {
		status = "degraded"
	}

	respondSuccess(w, r, models.HealthStatus{
		Status:        status,
		Version:       h.version,
		Source:        h.source,
		Movies:        stats.Movies,
		Users:         stats.Users,
		IndexedUsers:  stats.IndexedUsers,
		WatchEvents:   stats.WatchEvents,
		RatingSamples: stats.Ratings,
		Uptime:        time.Since(h.startTime).Seconds(),
	}, start)
}

// TopRated handles GET /api/v1/movies/top-rated
func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, h.engine.TopRated(r.Context()), start)
}

// Recommendations handles GET /api/v1/users/{userID}/recommendations
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := userIDFromContext(r.Context())

	recs, err := h.recommend(r.Context(), userID)
	if errors.Is(err, recommend.ErrUserNotIndexed) {
		respondError(w, http.StatusNotFound, "USER_NOT_INDEXED", "User has no watch history", err)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to compute recommendations", err)
		return
	}
	respondSuccess(w, r, recs, start)
}

// Genre handles GET /api/v1/users/{userID}/genre
func (h *Handler) Genre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID := userIDFromContext(r.Context())

	var res recommend.GenreResult
	if h.genreCache == nil {
		res = h.engine.GenreRecommendations(r.Context(), userID)
	} else {
		res = h.genreCache.GetOrCompute(userID, func() recommend.GenreResult {
			return h.engine.GenreRecommendations(r.Context(), userID)
		})
	}
	respondSuccess(w, r, res, start)
}

// Discover handles GET /api/v1/users/{userID}/discover?count=N
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := DiscoverRequest{Count: h.engine.Config().DiscoveryCount}
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "count must be an integer", err)
			return
		}
		req.Count = n
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	respondSuccess(w, r, h.engine.Discover(r.Context(), userIDFromContext(r.Context()), req.Count), start)
}

func (h *Handler) recommend(ctx context.Context, userID int) ([]recommend.RankedMovie, error) {
	if h.recommendCache == nil {
		return h.engine.Recommend(ctx, userID)
	}
	res := h.recommendCache.GetOrCompute(userID, func() recommendResult {
		movies, err := h.engine.Recommend(ctx, userID)
		return recommendResult{movies: movies, err: err}
	})
	return res.movies, res.err
}

// RequireOwner parses {userID} and rejects callers asking for another
// user's data. It must run after auth.Middleware.RequireBasic.
func (h *Handler) RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "userID")
		userID, err := strconv.Atoi(raw)
		if err != nil || userID < 0 {
			respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user ID", nil)
			return
		}

		caller, ok := auth.UserFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
			return
		}
		if caller.ID != userID {
			respondError(w, http.StatusForbidden, "FORBIDDEN", "Access to another user's data is not allowed", nil)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) int {
	id, _ := ctx.Value(userIDKey{}).(int)
	return id
}

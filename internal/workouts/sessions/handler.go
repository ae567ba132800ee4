package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/liftlogapp/liftlog/internal/middleware"
	"github.com/liftlogapp/liftlog/internal/telemetry/metrics"
	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"
	"github.com/liftlogapp/liftlog/internal/workouts/days"
	"github.com/liftlogapp/liftlog/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionResolver interface {
	Resolve(ctx context.Context, userID, workoutDayID string, anchor time.Time) (*Resolution, error)
}

type sessionsStore interface {
	Get(ctx context.Context, userID, id string) (*Session, error)
	SetNotes(ctx context.Context, userID, id, notes string) error
	Complete(ctx context.Context, userID, id string) error
}

type SetNotesRequest struct {
	Notes string `json:"notes"`
}

type Handler struct {
	resolver sessionResolver
	store    sessionsStore
	metrics  *metrics.Manager
}

func NewHandler(resolver sessionResolver, store sessionsStore, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		resolver: resolver,
		store:    store,
		metrics:  metricsManager,
	}
}

// HandleResolveDaySession resolves the session of a workout day within the
// ISO week of the given anchor date (today when absent).
func (handler *Handler) HandleResolveDaySession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.resolve")
	defer span.End()

	vars := mux.Vars(r)
	dayID := vars["id"]
	if dayID == "" {
		http.Error(w, "error, day id empty", http.StatusBadRequest)
		return
	}

	anchor := time.Now().UTC()
	if anchorParam := r.URL.Query().Get("anchor"); anchorParam != "" {
		parsed, err := time.Parse(time.DateOnly, anchorParam)
		if err != nil {
			http.Error(w, "invalid anchor date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		anchor = parsed
	}

	userID := middleware.UserIDFromContext(ctx)

	resolution, err := handler.resolver.Resolve(ctx, userID, dayID, anchor)
	if errors.Is(err, days.ErrDayNotFound) {
		http.Error(w, "workout day not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to resolve session for day %s: %s", dayID, err)
		http.Error(w, "failed to resolve session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionsResolved.With(
		prometheus.Labels{"outcome": string(resolution.Outcome)},
	).Inc()

	respJson, err := json.Marshal(resolution)
	if err != nil {
		log.Errorf("failed to marshal session resolution: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	session, err := handler.store.Get(ctx, userID, id)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get session %s: %s", id, err)
		http.Error(w, "failed to get session", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.complete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	err := handler.store.Complete(ctx, userID, id)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to complete session %s: %s", id, err)
		http.Error(w, "failed to complete session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"completed": true}`)
}

func (handler *Handler) HandleSetNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.setNotes")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req SetNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "set notes failed", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	err := handler.store.SetNotes(ctx, userID, id, req.Notes)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to set notes on session %s: %s", id, err)
		http.Error(w, "failed to set notes", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"saved": true}`)
}

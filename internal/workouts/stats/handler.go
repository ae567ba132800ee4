package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/liftlogapp/liftlog/internal/middleware"
	"github.com/liftlogapp/liftlog/internal/telemetry/metrics"
	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"
	"github.com/liftlogapp/liftlog/internal/workouts/days"
	"github.com/liftlogapp/liftlog/internal/workouts/logs"
	"github.com/liftlogapp/liftlog/internal/workouts/profiles"
	"github.com/liftlogapp/liftlog/internal/workouts/sessions"
	"github.com/liftlogapp/liftlog/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type logsLister interface {
	ListInRange(ctx context.Context, userID string, from, to time.Time) ([]logs.SetLog, error)
	ListForExercise(ctx context.Context, userID, exerciseID string) ([]logs.SetLog, error)
}

type sessionsLister interface {
	ListInRange(ctx context.Context, userID string, from, to time.Time) ([]sessions.Session, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID string) (*profiles.Profile, error)
}

type exerciseGetter interface {
	GetExercise(ctx context.Context, userID, id string) (*days.Exercise, error)
}

type BaselineResponse struct {
	ExerciseName string        `json:"exerciseName"`
	Baseline     *PersonalBest `json:"baseline"`
}

const defaultRangeDays = 30

type Handler struct {
	logs      logsLister
	sessions  sessionsLister
	profiles  profileGetter
	exercises exerciseGetter
	cache     *freecache.Cache
	cacheTTL  time.Duration
	metrics   *metrics.Manager
	now       func() time.Time
}

func NewHandler(
	logsRepo logsLister,
	sessionsRepo sessionsLister,
	profilesRepo profileGetter,
	exercisesRepo exerciseGetter,
	cache *freecache.Cache,
	cacheTTL time.Duration,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		logs:      logsRepo,
		sessions:  sessionsRepo,
		profiles:  profilesRepo,
		exercises: exercisesRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		metrics:   metricsManager,
		now:       time.Now,
	}
}

// HandleGetStats serves the dashboard snapshot for [from, to], defaulting
// to the trailing 30 days. Snapshots are cached per (user, range) for a
// short TTL since a dashboard refetches on every focus change; a zero TTL
// disables caching entirely.
func (handler *Handler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.get")
	defer span.End()

	userID := middleware.UserIDFromContext(ctx)

	today := dateOnly(handler.now())
	from, to := today.AddDate(0, 0, -(defaultRangeDays - 1)), today
	var err error
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		if from, err = time.Parse(time.DateOnly, fromParam); err != nil {
			http.Error(w, "invalid from date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		if to, err = time.Parse(time.DateOnly, toParam); err != nil {
			http.Error(w, "invalid to date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}
	if to.Before(from) {
		http.Error(w, "to date must not precede from date", http.StatusBadRequest)
		return
	}

	cacheKey := []byte(fmt.Sprintf(
		"stats::%s::%s::%s",
		userID, from.Format(time.DateOnly), to.Format(time.DateOnly),
	))
	if handler.cacheTTL > 0 {
		if cached, err := handler.cache.Get(cacheKey); err == nil {
			handler.metrics.CounterStatsCacheHits.Inc()
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
			return
		}
	}

	setLogs, err := handler.logs.ListInRange(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list logs in range: %s", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}
	workoutSessions, err := handler.sessions.ListInRange(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list sessions in range: %s", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}
	profile, err := handler.profiles.Get(ctx, userID)
	if err != nil {
		log.Errorf("failed to get profile: %s", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	snapshot := Analyze(AnalyzeInput{
		Logs:                setLogs,
		Sessions:            workoutSessions,
		From:                from,
		To:                  to,
		Today:               today,
		TemplateDaysPerWeek: profile.TrainingDaysPerWeek,
	})
	handler.metrics.CounterStatsSnapshots.Inc()

	if snapshot == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("failed to marshal stats snapshot: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if handler.cacheTTL > 0 {
		if err := handler.cache.Set(cacheKey, snapshotJson, int(handler.cacheTTL.Seconds())); err != nil {
			log.Warnf("failed to cache stats snapshot: %s", err)
		}
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, snapshotJson, http.StatusOK)
}

// HandleGetBaseline serves the PR baseline of an exercise, excluding the
// session given in the query so in-progress sets never compete against
// themselves.
func (handler *Handler) HandleGetBaseline(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.baseline")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["id"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	excludeSessionID := r.URL.Query().Get("session")

	userID := middleware.UserIDFromContext(ctx)

	exercise, err := handler.exercises.GetExercise(ctx, userID, exerciseID)
	if errors.Is(err, days.ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get exercise %s: %s", exerciseID, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	setLogs, err := handler.logs.ListForExercise(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("failed to list logs for exercise %s: %s", exerciseID, err)
		http.Error(w, "failed to compute baseline", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(BaselineResponse{
		ExerciseName: exercise.Name,
		Baseline:     BaselineForExercise(setLogs, excludeSessionID),
	})
	if err != nil {
		log.Errorf("failed to marshal baseline: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

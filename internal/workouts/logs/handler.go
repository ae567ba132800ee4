package logs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/liftlogapp/liftlog/internal/middleware"
	"github.com/liftlogapp/liftlog/internal/telemetry/metrics"
	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"
	"github.com/liftlogapp/liftlog/internal/workouts/days"
	"github.com/liftlogapp/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=logs_test

type logsRepo interface {
	ListBySession(ctx context.Context, userID, sessionID string) ([]SetLog, error)
	Create(ctx context.Context, setLog SetLog) (*SetLog, error)
	Update(ctx context.Context, userID, id string, params UpdateSetLogParams) error
	Delete(ctx context.Context, userID, id string) error
}

type exerciseGetter interface {
	GetExercise(ctx context.Context, userID, id string) (*days.Exercise, error)
}

type AddSetLogRequest struct {
	ExerciseID   string  `json:"exerciseId,omitempty"`
	ExerciseName string  `json:"exerciseName,omitempty"`
	MuscleGroup  string  `json:"muscleGroup,omitempty"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	IsPR         bool    `json:"isPr"`
}

type ListSetLogsResponse struct {
	Logs []SetLog `json:"logs"`
}

type Handler struct {
	repo      logsRepo
	exercises exerciseGetter
	metrics   *metrics.Manager
}

func NewHandler(repo logsRepo, exercises exerciseGetter, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:      repo,
		exercises: exercises,
		metrics:   metricsManager,
	}
}

func (handler *Handler) HandleListSessionLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.listBySession")
	defer span.End()

	vars := mux.Vars(r)
	sessionID := vars["id"]
	if sessionID == "" {
		http.Error(w, "error, session id empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	setLogs, err := handler.repo.ListBySession(ctx, userID, sessionID)
	if err != nil {
		log.Errorf("failed to list logs for session %s: %s", sessionID, err)
		http.Error(w, "failed to list set logs", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListSetLogsResponse{Logs: setLogs})
	if err != nil {
		log.Errorf("failed to marshal set logs: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleAddSetLog logs one set against a session. The exercise name and
// muscle group are taken from the exercise template when an exercise id is
// given, otherwise from the request as-is.
func (handler *Handler) HandleAddSetLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.add")
	defer span.End()

	vars := mux.Vars(r)
	sessionID := vars["id"]
	if sessionID == "" {
		http.Error(w, "error, session id empty", http.StatusBadRequest)
		return
	}

	var req AddSetLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add set log, unmarshal json params: %s", err)
		http.Error(w, "add set log failed", http.StatusBadRequest)
		return
	}

	if err := ValidateSet(req.Reps, req.Weight); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	exerciseName := req.ExerciseName
	muscleGroup := req.MuscleGroup
	if req.ExerciseID != "" {
		exercise, err := handler.exercises.GetExercise(ctx, userID, req.ExerciseID)
		if errors.Is(err, days.ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Errorf("failed to get exercise %s: %s", req.ExerciseID, err)
			http.Error(w, "failed to get exercise", http.StatusInternalServerError)
			return
		}
		exerciseName = exercise.Name
		muscleGroup = exercise.MuscleGroup
	}
	if exerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	created, err := handler.repo.Create(ctx, SetLog{
		UserID:       userID,
		SessionID:    sessionID,
		ExerciseID:   req.ExerciseID,
		ExerciseName: exerciseName,
		MuscleGroup:  muscleGroup,
		Reps:         req.Reps,
		Weight:       req.Weight,
		IsPR:         req.IsPR,
	})
	if err != nil {
		log.Errorf("failed to add set log to session %s: %s", sessionID, err)
		http.Error(w, "failed to add set log", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSetLogs.Inc()

	createdJson, err := json.Marshal(created)
	if err != nil {
		log.Errorf("failed to marshal set log: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, createdJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSetLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.update")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var params UpdateSetLogParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "update set log failed", http.StatusBadRequest)
		return
	}
	if params.Reps != nil && *params.Reps <= 0 {
		http.Error(w, "reps must be positive", http.StatusBadRequest)
		return
	}
	if params.Weight != nil && *params.Weight < 0 {
		http.Error(w, "weight must not be negative", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	err := handler.repo.Update(ctx, userID, id, params)
	if errors.Is(err, ErrSetLogNotFound) {
		http.Error(w, "set log not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to update set log %s: %s", id, err)
		http.Error(w, "failed to update set log", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated": true}`)
}

func (handler *Handler) HandleDeleteSetLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	err := handler.repo.Delete(ctx, userID, id)
	if errors.Is(err, ErrSetLogNotFound) {
		http.Error(w, "set log not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete set log %s: %s", id, err)
		http.Error(w, "failed to delete set log", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deleted": true}`)
}

package days

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/liftlogapp/liftlog/internal/middleware"
	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"
	"github.com/liftlogapp/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=days_test

type daysRepo interface {
	ListDays(ctx context.Context, userID string) ([]WorkoutDay, error)
	CreateDay(ctx context.Context, userID string, dayNumber int, name string) (*WorkoutDay, error)
	RenameDay(ctx context.Context, userID, id, name string) error
	ListExercises(ctx context.Context, userID, workoutDayID string) ([]Exercise, error)
	AddExercise(ctx context.Context, userID, workoutDayID, name, muscleGroup string) (*Exercise, error)
	UpdateExercise(ctx context.Context, userID, id, name, muscleGroup string) error
	DeleteExercise(ctx context.Context, userID, id string) error
}

type CreateDayRequest struct {
	DayNumber int    `json:"dayNumber"`
	Name      string `json:"name"`
}

type RenameDayRequest struct {
	Name string `json:"name"`
}

type AddExerciseRequest struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
}

type ListDaysResponse struct {
	Days []WorkoutDay `json:"days"`
}

type ListExercisesResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type Handler struct {
	repo daysRepo
}

func NewHandler(repo daysRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleListDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.list")
	defer span.End()

	userID := middleware.UserIDFromContext(ctx)

	workoutDays, err := handler.repo.ListDays(ctx, userID)
	if err != nil {
		log.Errorf("failed to list workout days: %s", err)
		http.Error(w, "failed to list workout days", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListDaysResponse{Days: workoutDays})
	if err != nil {
		log.Errorf("failed to marshal workout days: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleCreateDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create day, unmarshal json params: %s", err)
		http.Error(w, "create day failed", http.StatusBadRequest)
		return
	}

	if req.DayNumber < 1 || req.DayNumber > 7 {
		http.Error(w, "day number must be between 1 (Monday) and 7 (Sunday)", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, day name empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	day, err := handler.repo.CreateDay(ctx, userID, req.DayNumber, req.Name)
	if errors.Is(err, ErrDayExists) {
		http.Error(w, "workout day for that weekday already exists", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("failed to create workout day [%d] [%s]: %s", req.DayNumber, req.Name, err)
		http.Error(w, "failed to create workout day", http.StatusInternalServerError)
		return
	}

	dayJson, err := json.Marshal(day)
	if err != nil {
		log.Errorf("failed to marshal workout day: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout day added: %s", dayJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dayJson, http.StatusCreated)
}

func (handler *Handler) HandleRenameDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.rename")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req RenameDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "rename day failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, day name empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	err := handler.repo.RenameDay(ctx, userID, id, req.Name)
	if errors.Is(err, ErrDayNotFound) {
		http.Error(w, "workout day not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to rename workout day %s: %s", id, err)
		http.Error(w, "failed to rename workout day", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"renamed": true}`)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.listExercises")
	defer span.End()

	vars := mux.Vars(r)
	dayID := vars["id"]
	if dayID == "" {
		http.Error(w, "error, day id empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	exercises, err := handler.repo.ListExercises(ctx, userID, dayID)
	if err != nil {
		log.Errorf("failed to list exercises for day %s: %s", dayID, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListExercisesResponse{Exercises: exercises})
	if err != nil {
		log.Errorf("failed to marshal exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.addExercise")
	defer span.End()

	vars := mux.Vars(r)
	dayID := vars["id"]
	if dayID == "" {
		http.Error(w, "error, day id empty", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	exercise, err := handler.repo.AddExercise(ctx, userID, dayID, req.Name, req.MuscleGroup)
	if errors.Is(err, ErrDayNotFound) {
		http.Error(w, "workout day not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to add exercise [%s] to day %s: %s", req.Name, dayID, err)
		http.Error(w, "failed to add exercise", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.updateExercise")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	err := handler.repo.UpdateExercise(ctx, userID, id, req.Name, req.MuscleGroup)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to update exercise %s: %s", id, err)
		http.Error(w, "failed to update exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated": true}`)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.deleteExercise")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	err := handler.repo.DeleteExercise(ctx, userID, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete exercise %s: %s", id, err)
		http.Error(w, "failed to delete exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deleted": true}`)
}

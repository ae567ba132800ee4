package profiles

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/liftlogapp/liftlog/internal/middleware"
	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"
	"github.com/liftlogapp/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profiles_test

type profilesRepo interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, userID string, trainingDaysPerWeek int) (*Profile, error)
}

type UpdateProfileRequest struct {
	TrainingDaysPerWeek int `json:"trainingDaysPerWeek"`
}

type Handler struct {
	repo profilesRepo
}

func NewHandler(repo profilesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get")
	defer span.End()

	userID := middleware.UserIDFromContext(ctx)

	profile, err := handler.repo.Get(ctx, userID)
	if err != nil {
		log.Errorf("failed to get profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.update")
	defer span.End()

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}
	if req.TrainingDaysPerWeek < 1 || req.TrainingDaysPerWeek > 7 {
		http.Error(w, "training days per week must be between 1 and 7", http.StatusBadRequest)
		return
	}

	userID := middleware.UserIDFromContext(ctx)

	profile, err := handler.repo.Upsert(ctx, userID, req.TrainingDaysPerWeek)
	if err != nil {
		log.Errorf("failed to update profile: %s", err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusOK)
}

package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"
	"github.com/liftlogapp/liftlog/internal/workouts/days"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Find(ctx context.Context, userID, workoutDayID string, date time.Time) (*Session, error)
	Create(ctx context.Context, userID, workoutDayID string, date time.Time) (*Session, error)
}

type dayGetter interface {
	GetDay(ctx context.Context, userID, id string) (*days.WorkoutDay, error)
}

// Resolver maps a workout day template onto a concrete dated session. The
// target date is the template's weekday within the ISO week of the anchor.
// A missing session is auto-created only when the target date falls in the
// current ISO week; past and future weeks resolve to an empty outcome.
type Resolver struct {
	repo sessionsRepo
	days dayGetter
	now  func() time.Time
}

func NewResolver(repo sessionsRepo, days dayGetter) *Resolver {
	return &Resolver{
		repo: repo,
		days: days,
		now:  time.Now,
	}
}

func (r *Resolver) Resolve(ctx context.Context, userID, workoutDayID string, anchor time.Time) (_ *Resolution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day.id", workoutDayID))

	day, err := r.days.GetDay(ctx, userID, workoutDayID)
	if err != nil {
		return nil, fmt.Errorf("get workout day: %w", err)
	}

	targetDate := TargetDate(anchor, day.DayNumber)
	span.SetAttributes(attribute.String("target.date", targetDate.Format(time.DateOnly)))

	session, err := r.repo.Find(ctx, userID, workoutDayID, targetDate)
	if err == nil {
		return &Resolution{
			Outcome:    OutcomeFound,
			TargetDate: targetDate,
			Session:    session,
		}, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, fmt.Errorf("find session: %w", err)
	}

	now := r.now().UTC()
	if !SameISOWeek(targetDate, now) {
		outcome := OutcomeEmptyFuture
		if targetDate.Before(WeekStart(now)) {
			outcome = OutcomeEmptyPast
		}
		return &Resolution{
			Outcome:    outcome,
			TargetDate: targetDate,
		}, nil
	}

	session, err = r.repo.Create(ctx, userID, workoutDayID, targetDate)
	if errors.Is(err, ErrSessionExists) {
		// lost a create race, the other writer's session wins
		log.Tracef("session for day %s on %s created concurrently, re-fetching",
			workoutDayID, targetDate.Format(time.DateOnly))
		session, err = r.repo.Find(ctx, userID, workoutDayID, targetDate)
		if err != nil {
			return nil, fmt.Errorf("re-fetch session after create conflict: %w", err)
		}
		return &Resolution{
			Outcome:    OutcomeFound,
			TargetDate: targetDate,
			Session:    session,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &Resolution{
		Outcome:    OutcomeCreated,
		TargetDate: targetDate,
		Session:    session,
	}, nil
}

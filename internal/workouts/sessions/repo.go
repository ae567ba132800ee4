package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"
	"github.com/liftlogapp/liftlog/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	var s Session
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, COALESCE(workout_day_id::text, ''), date, COALESCE(notes, ''), completed_at, created_at
			FROM workout_sessions
			WHERE user_id = $1 AND id = $2;`,
		userID, id,
	).Scan(&s.ID, &s.UserID, &s.WorkoutDayID, &s.Date, &s.Notes, &s.CompletedAt, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) Find(ctx context.Context, userID, workoutDayID string, date time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s Session
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, COALESCE(workout_day_id::text, ''), date, COALESCE(notes, ''), completed_at, created_at
			FROM workout_sessions
			WHERE user_id = $1 AND workout_day_id = $2 AND date = $3;`,
		userID, workoutDayID, date,
	).Scan(&s.ID, &s.UserID, &s.WorkoutDayID, &s.Date, &s.Notes, &s.CompletedAt, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) Create(ctx context.Context, userID, workoutDayID string, date time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s := Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		WorkoutDayID: workoutDayID,
		Date:         date,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_sessions (id, user_id, workout_day_id, date)
			VALUES ($1, $2, $3, $4)
			RETURNING date, created_at;`,
		s.ID, s.UserID, s.WorkoutDayID, s.Date,
	).Scan(&s.Date, &s.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrSessionExists
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) ListInRange(ctx context.Context, userID string, from, to time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, COALESCE(workout_day_id::text, ''), date, COALESCE(notes, ''), completed_at, created_at
			FROM workout_sessions
			WHERE user_id = $1 AND date >= $2 AND date <= $3
			ORDER BY date;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workoutSessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.WorkoutDayID, &s.Date, &s.Notes, &s.CompletedAt, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workout session: %w", err)
		}
		workoutSessions = append(workoutSessions, s)
	}
	return workoutSessions, rows.Err()
}

func (r *Repo) SetNotes(ctx context.Context, userID, id, notes string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.setNotes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_sessions SET notes = NULLIF($1, '') WHERE user_id = $2 AND id = $3;`,
		notes, userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) Complete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_sessions SET completed_at = NOW() WHERE user_id = $1 AND id = $2;`,
		userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

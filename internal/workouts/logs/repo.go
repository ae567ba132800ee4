package logs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const setLogColumns = `id, user_id, session_id, COALESCE(exercise_id::text, ''), exercise_name,
	COALESCE(muscle_group, ''), set_number, reps, weight, is_pr, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanSetLog(row pgx.Row) (*SetLog, error) {
	var l SetLog
	err := row.Scan(
		&l.ID, &l.UserID, &l.SessionID, &l.ExerciseID, &l.ExerciseName,
		&l.MuscleGroup, &l.SetNumber, &l.Reps, &l.Weight, &l.IsPR, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("setlog.id", id))

	l, err := scanSetLog(r.db.QueryRow(
		ctx,
		`SELECT `+setLogColumns+` FROM exercise_logs WHERE user_id = $1 AND id = $2;`,
		userID, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSetLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *Repo) ListBySession(ctx context.Context, userID, sessionID string) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.listBySession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+setLogColumns+`
			FROM exercise_logs
			WHERE user_id = $1 AND session_id = $2
			ORDER BY created_at, set_number;`,
		userID, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSetLogs(rows)
}

// ListInRange returns logs whose parent session falls inside [from, to],
// ordered by session date.
func (r *Repo) ListInRange(ctx context.Context, userID string, from, to time.Time) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.listInRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT l.id, l.user_id, l.session_id, COALESCE(l.exercise_id::text, ''), l.exercise_name,
				COALESCE(l.muscle_group, ''), l.set_number, l.reps, l.weight, l.is_pr, l.created_at
			FROM exercise_logs l
			JOIN workout_sessions s ON s.id = l.session_id
			WHERE l.user_id = $1 AND s.date >= $2 AND s.date <= $3
			ORDER BY s.date, l.created_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSetLogs(rows)
}

func (r *Repo) ListForExercise(ctx context.Context, userID, exerciseID string) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.listForExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+setLogColumns+`
			FROM exercise_logs
			WHERE user_id = $1 AND exercise_id = $2
			ORDER BY created_at;`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSetLogs(rows)
}

// Create assigns the next set number within (session, exercise name) and
// persists the log.
func (r *Repo) Create(ctx context.Context, log SetLog) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	log.ID = uuid.NewString()
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_logs
				(id, user_id, session_id, exercise_id, exercise_name, muscle_group, set_number, reps, weight, is_pr)
			VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, NULLIF($6, ''), (
					SELECT COUNT(*) + 1 FROM exercise_logs
					WHERE user_id = $2 AND session_id = $3 AND exercise_name = $5
				), $7, $8, $9)
			RETURNING set_number, created_at;`,
		log.ID, log.UserID, log.SessionID, log.ExerciseID, log.ExerciseName,
		log.MuscleGroup, log.Reps, log.Weight, log.IsPR,
	).Scan(&log.SetNumber, &log.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert set log: %w", err)
	}
	return &log, nil
}

type UpdateSetLogParams struct {
	Reps   *int     `json:"reps,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	IsPR   *bool    `json:"isPr,omitempty"`
}

// Update patches only the fields present in params.
func (r *Repo) Update(ctx context.Context, userID, id string, params UpdateSetLogParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("setlog.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_logs SET
				reps = COALESCE($1, reps),
				weight = COALESCE($2, weight),
				is_pr = COALESCE($3, is_pr)
			WHERE user_id = $4 AND id = $5;`,
		params.Reps, params.Weight, params.IsPR, userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetLogNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("setlog.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise_logs WHERE user_id = $1 AND id = $2;`,
		userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetLogNotFound
	}
	return nil
}

func collectSetLogs(rows pgx.Rows) ([]SetLog, error) {
	var setLogs []SetLog
	for rows.Next() {
		l, err := scanSetLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan set log: %w", err)
		}
		setLogs = append(setLogs, *l)
	}
	return setLogs, rows.Err()
}

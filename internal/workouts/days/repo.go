package days

import (
	"context"
	"errors"
	"fmt"

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

func (r *Repo) ListDays(ctx context.Context, userID string) (_ []WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, day_number, name, created_at
			FROM workout_days
			WHERE user_id = $1
			ORDER BY day_number;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workoutDays []WorkoutDay
	for rows.Next() {
		var day WorkoutDay
		if err := rows.Scan(&day.ID, &day.UserID, &day.DayNumber, &day.Name, &day.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workout day: %w", err)
		}
		workoutDays = append(workoutDays, day)
	}
	return workoutDays, rows.Err()
}

func (r *Repo) GetDay(ctx context.Context, userID, id string) (_ *WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day.id", id))

	var day WorkoutDay
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, day_number, name, created_at
			FROM workout_days
			WHERE user_id = $1 AND id = $2;`,
		userID, id,
	).Scan(&day.ID, &day.UserID, &day.DayNumber, &day.Name, &day.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *Repo) CreateDay(ctx context.Context, userID string, dayNumber int, name string) (_ *WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := WorkoutDay{
		ID:        uuid.NewString(),
		UserID:    userID,
		DayNumber: dayNumber,
		Name:      name,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_days (id, user_id, day_number, name)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at;`,
		day.ID, day.UserID, day.DayNumber, day.Name,
	).Scan(&day.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDayExists
		}
		return nil, err
	}
	return &day, nil
}

func (r *Repo) RenameDay(ctx context.Context, userID, id, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_days SET name = $1 WHERE user_id = $2 AND id = $3;`,
		name, userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

func (r *Repo) ListExercises(ctx context.Context, userID, workoutDayID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_day_id, name, COALESCE(muscle_group, ''), sort_order, created_at
			FROM exercises
			WHERE user_id = $1 AND workout_day_id = $2
			ORDER BY sort_order;`,
		userID, workoutDayID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.WorkoutDayID, &e.Name, &e.MuscleGroup, &e.SortOrder, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (r *Repo) GetExercise(ctx context.Context, userID, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, workout_day_id, name, COALESCE(muscle_group, ''), sort_order, created_at
			FROM exercises
			WHERE user_id = $1 AND id = $2;`,
		userID, id,
	).Scan(&e.ID, &e.UserID, &e.WorkoutDayID, &e.Name, &e.MuscleGroup, &e.SortOrder, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// AddExercise appends the exercise to the end of the day's list,
// i.e. sort_order = current number of exercises for that day.
func (r *Repo) AddExercise(ctx context.Context, userID, workoutDayID, name, muscleGroup string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e := Exercise{
		ID:           uuid.NewString(),
		UserID:       userID,
		WorkoutDayID: workoutDayID,
		Name:         name,
		MuscleGroup:  muscleGroup,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercises (id, user_id, workout_day_id, name, muscle_group, sort_order)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), (
				SELECT COUNT(*) FROM exercises WHERE user_id = $2 AND workout_day_id = $3
			))
			RETURNING sort_order, created_at;`,
		e.ID, e.UserID, e.WorkoutDayID, e.Name, e.MuscleGroup,
	).Scan(&e.SortOrder, &e.CreatedAt)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, userID, id, name, muscleGroup string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.updateExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercises SET name = $1, muscle_group = NULLIF($2, '') WHERE user_id = $3 AND id = $4;`,
		name, muscleGroup, userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) DeleteExercise(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.deleteExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercises WHERE user_id = $1 AND id = $2;`,
		userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

package profiles

import (
	"context"
	"errors"

	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the user's profile, or a zero-valued one when none was
// stored yet. A missing profile is not an error.
func (r *Repo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p Profile
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, training_days_per_week, updated_at
			FROM profiles
			WHERE user_id = $1;`,
		userID,
	).Scan(&p.UserID, &p.TrainingDaysPerWeek, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Upsert(ctx context.Context, userID string, trainingDaysPerWeek int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p := Profile{
		UserID:              userID,
		TrainingDaysPerWeek: trainingDaysPerWeek,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO profiles (user_id, training_days_per_week)
			VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE
				SET training_days_per_week = EXCLUDED.training_days_per_week,
					updated_at = NOW()
			RETURNING updated_at;`,
		p.UserID, p.TrainingDaysPerWeek,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

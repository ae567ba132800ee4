package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id                TEXT PRIMARY KEY,
	training_days_per_week INT NOT NULL DEFAULT 0,
	updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_days (
	id         UUID PRIMARY KEY,
	user_id    TEXT NOT NULL,
	day_number INT NOT NULL CHECK (day_number BETWEEN 1 AND 7),
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, day_number)
);

CREATE TABLE IF NOT EXISTS exercises (
	id             UUID PRIMARY KEY,
	user_id        TEXT NOT NULL,
	workout_day_id UUID NOT NULL REFERENCES workout_days(id) ON DELETE CASCADE,
	name           TEXT NOT NULL,
	muscle_group   TEXT,
	sort_order     INT NOT NULL DEFAULT 0,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

-- the UNIQUE (user_id, workout_day_id, date) constraint is what makes
-- concurrent find-or-create of a session have at most one winner
CREATE TABLE IF NOT EXISTS workout_sessions (
	id             UUID PRIMARY KEY,
	user_id        TEXT NOT NULL,
	workout_day_id UUID REFERENCES workout_days(id) ON DELETE SET NULL,
	date           DATE NOT NULL,
	notes          TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	completed_at   TIMESTAMPTZ,
	UNIQUE (user_id, workout_day_id, date)
);

-- exercise_name and muscle_group are denormalized so that logs survive
-- deletion of their exercise template
CREATE TABLE IF NOT EXISTS exercise_logs (
	id                 UUID PRIMARY KEY,
	user_id            TEXT NOT NULL,
	session_id         UUID NOT NULL REFERENCES workout_sessions(id) ON DELETE CASCADE,
	exercise_id        UUID REFERENCES exercises(id) ON DELETE SET NULL,
	exercise_name      TEXT NOT NULL,
	muscle_group       TEXT,
	set_number         INT NOT NULL CHECK (set_number > 0),
	reps               INT NOT NULL CHECK (reps > 0),
	weight             DOUBLE PRECISION NOT NULL CHECK (weight >= 0),
	is_pr              BOOLEAN NOT NULL DEFAULT FALSE,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_workout_sessions_user_date ON workout_sessions(user_id, date);
CREATE INDEX IF NOT EXISTS idx_exercise_logs_session ON exercise_logs(session_id);
CREATE INDEX IF NOT EXISTS idx_exercise_logs_user_exercise ON exercise_logs(user_id, exercise_name);
`

// Migrate ensures tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema holds the three tables of the tracker. Sets cascade when their
// parent exercise is deleted; username and token carry UNIQUE constraints
// so collisions surface as storage errors rather than silent overwrites.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR(64) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	token VARCHAR(64) NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS exercises (
	id BIGSERIAL PRIMARY KEY,
	owner_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	name VARCHAR(255) NOT NULL,
	description TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_exercises_owner_id ON exercises (owner_id);

CREATE TABLE IF NOT EXISTS sets (
	id BIGSERIAL PRIMARY KEY,
	exercise_id BIGINT NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
	weight DOUBLE PRECISION NOT NULL,
	repetitions BIGINT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sets_exercise_id ON sets (exercise_id);
`

// CreateSchema creates the tables on startup when they are absent.
// There is no migration system; the DDL is idempotent.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

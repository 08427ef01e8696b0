package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
)

// ExerciseReadRepository reads exercises scoped by their owner. Every query
// filters on owner_id so another user's rows are indistinguishable from
// absent rows.
type ExerciseReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewExerciseReadRepository(db *sqlx.DB, txGetter TxGetter) *ExerciseReadRepository {
	return &ExerciseReadRepository{db: db, txGetter: txGetter}
}

// List returns up to limit exercises owned by ownerID, skipping the first
// skip rows. Order is id ascending.
func (r *ExerciseReadRepository) List(ctx context.Context, ownerID int64, skip, limit int) ([]models.ExerciseDB, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM exercises
		WHERE owner_id = $1
		ORDER BY id ASC
		OFFSET $2 LIMIT $3
	`

	exercises := make([]models.ExerciseDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &exercises, query, ownerID, skip, limit)

	logger.Log.Infow("exercise query",
		"query", strings.Join(strings.Fields(query), " "),
		"owner_id", ownerID,
		"skip", skip,
		"limit", limit,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return exercises, nil
}

// Get returns the exercise with the given id owned by ownerID, or nil when
// the id does not exist or belongs to someone else.
func (r *ExerciseReadRepository) Get(ctx context.Context, ownerID, exerciseID int64) (*models.ExerciseDB, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM exercises
		WHERE owner_id = $1 AND id = $2
	`

	var exercise models.ExerciseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exercise, query, ownerID, exerciseID)

	logger.Log.Infow("exercise query",
		"query", strings.Join(strings.Fields(query), " "),
		"owner_id", ownerID,
		"exercise_id", exerciseID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &exercise, nil
}

// ExerciseWriteRepository writes exercise records.
type ExerciseWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewExerciseWriteRepository(db *sqlx.DB, txGetter TxGetter) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new exercise for ownerID and returns the stored record.
func (r *ExerciseWriteRepository) Save(ctx context.Context, ownerID int64, name string, description *string) (*models.ExerciseDB, error) {
	const query = `
		INSERT INTO exercises (owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, owner_id, name, description, created_at, updated_at
	`

	var exercise models.ExerciseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exercise, query, ownerID, name, description)

	logger.Log.Infow("exercise insert",
		"query", strings.Join(strings.Fields(query), " "),
		"owner_id", ownerID,
		"name", name,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &exercise, nil
}

// Update overwrites every mutable field of the exercise. A nil description
// clears a previously stored one.
func (r *ExerciseWriteRepository) Update(ctx context.Context, exerciseID int64, name string, description *string) (*models.ExerciseDB, error) {
	const query = `
		UPDATE exercises
		SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, owner_id, name, description, created_at, updated_at
	`

	var exercise models.ExerciseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exercise, query, exerciseID, name, description)

	logger.Log.Infow("exercise update",
		"query", strings.Join(strings.Fields(query), " "),
		"exercise_id", exerciseID,
		"name", name,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &exercise, nil
}

// Delete removes the exercise. Child sets go with it through the
// ON DELETE CASCADE constraint.
func (r *ExerciseWriteRepository) Delete(ctx context.Context, exerciseID int64) error {
	const query = `DELETE FROM exercises WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, exerciseID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("exercise delete",
		"query", query,
		"exercise_id", exerciseID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}

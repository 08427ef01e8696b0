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

// SetReadRepository reads sets. Lookups by id join through exercises so a
// set is only reachable when the whole ownership chain resolves to the
// current user.
type SetReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSetReadRepository(db *sqlx.DB, txGetter TxGetter) *SetReadRepository {
	return &SetReadRepository{db: db, txGetter: txGetter}
}

// Get returns the set with the given id under exerciseID owned by ownerID.
// The three predicates live in a single joined query; checking them
// separately would allow ownership bypass through mismatched ids.
func (r *SetReadRepository) Get(ctx context.Context, ownerID, exerciseID, setID int64) (*models.SetDB, error) {
	const query = `
		SELECT s.id, s.exercise_id, s.weight, s.repetitions, s.created_at, s.updated_at
		FROM sets s
		JOIN exercises e ON e.id = s.exercise_id
		WHERE s.id = $1 AND s.exercise_id = $2 AND e.owner_id = $3
	`

	var set models.SetDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &set, query, setID, exerciseID, ownerID)

	logger.Log.Infow("set query",
		"query", strings.Join(strings.Fields(query), " "),
		"owner_id", ownerID,
		"exercise_id", exerciseID,
		"set_id", setID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &set, nil
}

// ListByExerciseIDs returns the sets of all given exercises, id ascending.
// Callers must have resolved the exercise ids through an owner-scoped query.
func (r *SetReadRepository) ListByExerciseIDs(ctx context.Context, exerciseIDs []int64) ([]models.SetDB, error) {
	sets := make([]models.SetDB, 0)
	if len(exerciseIDs) == 0 {
		return sets, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, exercise_id, weight, repetitions, created_at, updated_at
		FROM sets
		WHERE exercise_id IN (?)
		ORDER BY id ASC
	`, exerciseIDs)
	if err != nil {
		return nil, err
	}

	ext := executor(ctx, r.db, r.txGetter)
	query = ext.Rebind(query)
	err = sqlx.SelectContext(ctx, ext, &sets, query, args...)

	logger.Log.Infow("set query",
		"query", strings.Join(strings.Fields(query), " "),
		"exercise_ids", exerciseIDs,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return sets, nil
}

// SetWriteRepository writes set records. Ownership of the parent exercise is
// the caller's responsibility; writes here only see exercise and set ids.
type SetWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSetWriteRepository(db *sqlx.DB, txGetter TxGetter) *SetWriteRepository {
	return &SetWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new set under exerciseID and returns the stored record.
func (r *SetWriteRepository) Save(ctx context.Context, exerciseID int64, weight float64, repetitions int64) (*models.SetDB, error) {
	const query = `
		INSERT INTO sets (exercise_id, weight, repetitions, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, exercise_id, weight, repetitions, created_at, updated_at
	`

	var set models.SetDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &set, query, exerciseID, weight, repetitions)

	logger.Log.Infow("set insert",
		"query", strings.Join(strings.Fields(query), " "),
		"exercise_id", exerciseID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &set, nil
}

// Update overwrites every mutable field of the set.
func (r *SetWriteRepository) Update(ctx context.Context, setID int64, weight float64, repetitions int64) (*models.SetDB, error) {
	const query = `
		UPDATE sets
		SET weight = $2, repetitions = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, exercise_id, weight, repetitions, created_at, updated_at
	`

	var set models.SetDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &set, query, setID, weight, repetitions)

	logger.Log.Infow("set update",
		"query", strings.Join(strings.Fields(query), " "),
		"set_id", setID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &set, nil
}

// Delete removes a single set.
func (r *SetWriteRepository) Delete(ctx context.Context, setID int64) error {
	const query = `DELETE FROM sets WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, setID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("set delete",
		"query", query,
		"set_id", setID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}

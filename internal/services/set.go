package services

import (
	"context"
	"errors"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
)

// ErrSetNotFound covers an absent set id, a set under a different exercise
// and a set whose exercise belongs to another user, indistinguishably.
var ErrSetNotFound = errors.New("set not found")

// SetReader defines the ownership-chain-scoped read operation for sets.
type SetReader interface {
	Get(ctx context.Context, ownerID, exerciseID, setID int64) (*models.SetDB, error)
}

// SetWriter defines write operations for sets.
type SetWriter interface {
	Save(ctx context.Context, exerciseID int64, weight float64, repetitions int64) (*models.SetDB, error)
	Update(ctx context.Context, setID int64, weight float64, repetitions int64) (*models.SetDB, error)
	Delete(ctx context.Context, setID int64) error
}

// SetService implements CRUD for sets nested under exercises.
type SetService struct {
	reader      SetReader
	writer      SetWriter
	kafkaWriter KafkaWriter
}

// NewSetService creates a new SetService. kafkaWriter may be nil, which
// disables event publishing.
func NewSetService(reader SetReader, writer SetWriter, kafkaWriter KafkaWriter) *SetService {
	return &SetService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Get returns the set reachable through the full ownership chain, or
// ErrSetNotFound.
func (svc *SetService) Get(ctx context.Context, ownerID, exerciseID, setID int64) (*models.SetDB, error) {
	set, err := svc.reader.Get(ctx, ownerID, exerciseID, setID)
	if err != nil {
		logger.Log.Errorw("failed to get set", "owner_id", ownerID, "exercise_id", exerciseID, "set_id", setID, "err", err)
		return nil, err
	}
	if set == nil {
		return nil, ErrSetNotFound
	}
	return set, nil
}

// Create stores a new set under exerciseID. The caller must have resolved
// the exercise through an owner-scoped lookup already; ownership is not
// re-checked here.
func (svc *SetService) Create(ctx context.Context, ownerID, exerciseID int64, weight float64, repetitions int64) (*models.SetDB, error) {
	set, err := svc.writer.Save(ctx, exerciseID, weight, repetitions)
	if err != nil {
		logger.Log.Errorw("failed to create set", "exercise_id", exerciseID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, ownerID, models.EntitySet, set.ID, models.ActionCreated)

	return set, nil
}

// Replace overwrites weight and repetitions of the set resolved through the
// ownership chain. Returns ErrSetNotFound when the chain does not resolve.
func (svc *SetService) Replace(ctx context.Context, ownerID, exerciseID, setID int64, weight float64, repetitions int64) (*models.SetDB, error) {
	set, err := svc.reader.Get(ctx, ownerID, exerciseID, setID)
	if err != nil {
		logger.Log.Errorw("failed to get set for update", "owner_id", ownerID, "exercise_id", exerciseID, "set_id", setID, "err", err)
		return nil, err
	}
	if set == nil {
		return nil, ErrSetNotFound
	}

	updated, err := svc.writer.Update(ctx, set.ID, weight, repetitions)
	if err != nil {
		logger.Log.Errorw("failed to update set", "set_id", set.ID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, ownerID, models.EntitySet, updated.ID, models.ActionUpdated)

	return updated, nil
}

// Delete removes the set resolved through the ownership chain. Returns
// ErrSetNotFound when the chain does not resolve.
func (svc *SetService) Delete(ctx context.Context, ownerID, exerciseID, setID int64) error {
	set, err := svc.reader.Get(ctx, ownerID, exerciseID, setID)
	if err != nil {
		logger.Log.Errorw("failed to get set for delete", "owner_id", ownerID, "exercise_id", exerciseID, "set_id", setID, "err", err)
		return err
	}
	if set == nil {
		return ErrSetNotFound
	}

	if err := svc.writer.Delete(ctx, set.ID); err != nil {
		logger.Log.Errorw("failed to delete set", "set_id", set.ID, "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, ownerID, models.EntitySet, set.ID, models.ActionDeleted)

	return nil
}

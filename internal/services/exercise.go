package services

import (
	"context"
	"errors"

	"github.com/avolkov/gym-tracker/internal/logger"
	"github.com/avolkov/gym-tracker/internal/models"
)

// ErrExerciseNotFound covers both an absent exercise id and an exercise
// owned by another user; callers cannot tell the two apart.
var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseReader defines owner-scoped read operations for exercises.
type ExerciseReader interface {
	List(ctx context.Context, ownerID int64, skip, limit int) ([]models.ExerciseDB, error)
	Get(ctx context.Context, ownerID, exerciseID int64) (*models.ExerciseDB, error)
}

// ExerciseWriter defines write operations for exercises.
type ExerciseWriter interface {
	Save(ctx context.Context, ownerID int64, name string, description *string) (*models.ExerciseDB, error)
	Update(ctx context.Context, exerciseID int64, name string, description *string) (*models.ExerciseDB, error)
	Delete(ctx context.Context, exerciseID int64) error
}

// ExerciseSetsReader loads child sets for already-resolved exercises.
type ExerciseSetsReader interface {
	ListByExerciseIDs(ctx context.Context, exerciseIDs []int64) ([]models.SetDB, error)
}

// ExerciseService implements owner-scoped exercise CRUD.
type ExerciseService struct {
	reader      ExerciseReader
	writer      ExerciseWriter
	setsReader  ExerciseSetsReader
	kafkaWriter KafkaWriter
}

// NewExerciseService creates a new ExerciseService. kafkaWriter may be nil,
// which disables event publishing.
func NewExerciseService(
	reader ExerciseReader,
	writer ExerciseWriter,
	setsReader ExerciseSetsReader,
	kafkaWriter KafkaWriter,
) *ExerciseService {
	return &ExerciseService{
		reader:      reader,
		writer:      writer,
		setsReader:  setsReader,
		kafkaWriter: kafkaWriter,
	}
}

// List returns up to limit exercises owned by ownerID starting at offset
// skip, each with its sets embedded, ordered by id ascending.
func (svc *ExerciseService) List(ctx context.Context, ownerID int64, skip, limit int) ([]models.ExerciseWithSets, error) {
	exercises, err := svc.reader.List(ctx, ownerID, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list exercises", "owner_id", ownerID, "err", err)
		return nil, err
	}

	ids := make([]int64, 0, len(exercises))
	for _, e := range exercises {
		ids = append(ids, e.ID)
	}

	sets, err := svc.setsReader.ListByExerciseIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load sets for exercises", "owner_id", ownerID, "err", err)
		return nil, err
	}

	setsByExercise := make(map[int64][]models.SetDB, len(exercises))
	for _, s := range sets {
		setsByExercise[s.ExerciseID] = append(setsByExercise[s.ExerciseID], s)
	}

	result := make([]models.ExerciseWithSets, 0, len(exercises))
	for _, e := range exercises {
		childSets := setsByExercise[e.ID]
		if childSets == nil {
			childSets = make([]models.SetDB, 0)
		}
		result = append(result, models.ExerciseWithSets{ExerciseDB: e, Sets: childSets})
	}

	return result, nil
}

// Get returns a single exercise with its sets, or ErrExerciseNotFound when
// the owner-scoped lookup yields nothing.
func (svc *ExerciseService) Get(ctx context.Context, ownerID, exerciseID int64) (*models.ExerciseWithSets, error) {
	exercise, err := svc.reader.Get(ctx, ownerID, exerciseID)
	if err != nil {
		logger.Log.Errorw("failed to get exercise", "owner_id", ownerID, "exercise_id", exerciseID, "err", err)
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	return svc.withSets(ctx, exercise)
}

// Create stores a new exercise for ownerID. It always succeeds given valid
// input; the returned exercise carries an empty sets slice.
func (svc *ExerciseService) Create(ctx context.Context, ownerID int64, name string, description *string) (*models.ExerciseWithSets, error) {
	exercise, err := svc.writer.Save(ctx, ownerID, name, description)
	if err != nil {
		logger.Log.Errorw("failed to create exercise", "owner_id", ownerID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, ownerID, models.EntityExercise, exercise.ID, models.ActionCreated)

	return &models.ExerciseWithSets{ExerciseDB: *exercise, Sets: make([]models.SetDB, 0)}, nil
}

// Replace overwrites name and description of the exercise. Omitted
// descriptions clear the stored one; this is a full-field overwrite, not a
// patch. Returns ErrExerciseNotFound when the owner-scoped lookup fails.
func (svc *ExerciseService) Replace(ctx context.Context, ownerID, exerciseID int64, name string, description *string) (*models.ExerciseWithSets, error) {
	exercise, err := svc.reader.Get(ctx, ownerID, exerciseID)
	if err != nil {
		logger.Log.Errorw("failed to get exercise for update", "owner_id", ownerID, "exercise_id", exerciseID, "err", err)
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	updated, err := svc.writer.Update(ctx, exercise.ID, name, description)
	if err != nil {
		logger.Log.Errorw("failed to update exercise", "exercise_id", exercise.ID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, ownerID, models.EntityExercise, updated.ID, models.ActionUpdated)

	return svc.withSets(ctx, updated)
}

// Delete removes the exercise and, through the cascade constraint, all of
// its sets. Returns ErrExerciseNotFound when the owner-scoped lookup fails.
func (svc *ExerciseService) Delete(ctx context.Context, ownerID, exerciseID int64) error {
	exercise, err := svc.reader.Get(ctx, ownerID, exerciseID)
	if err != nil {
		logger.Log.Errorw("failed to get exercise for delete", "owner_id", ownerID, "exercise_id", exerciseID, "err", err)
		return err
	}
	if exercise == nil {
		return ErrExerciseNotFound
	}

	if err := svc.writer.Delete(ctx, exercise.ID); err != nil {
		logger.Log.Errorw("failed to delete exercise", "exercise_id", exercise.ID, "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, ownerID, models.EntityExercise, exercise.ID, models.ActionDeleted)

	return nil
}

func (svc *ExerciseService) withSets(ctx context.Context, exercise *models.ExerciseDB) (*models.ExerciseWithSets, error) {
	sets, err := svc.setsReader.ListByExerciseIDs(ctx, []int64{exercise.ID})
	if err != nil {
		logger.Log.Errorw("failed to load sets", "exercise_id", exercise.ID, "err", err)
		return nil, err
	}
	return &models.ExerciseWithSets{ExerciseDB: *exercise, Sets: sets}, nil
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avolkov/gym-tracker/internal/models"
	"github.com/avolkov/gym-tracker/internal/services"
)

func newExerciseService(t *testing.T) (
	*services.ExerciseService,
	*services.MockExerciseReader,
	*services.MockExerciseWriter,
	*services.MockExerciseSetsReader,
	*services.MockKafkaWriter,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockReader := services.NewMockExerciseReader(ctrl)
	mockWriter := services.NewMockExerciseWriter(ctrl)
	mockSets := services.NewMockExerciseSetsReader(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewExerciseService(mockReader, mockWriter, mockSets, mockKafka)
	return svc, mockReader, mockWriter, mockSets, mockKafka
}

func TestExerciseService_List(t *testing.T) {
	svc, mockReader, _, mockSets, _ := newExerciseService(t)

	exercises := []models.ExerciseDB{
		{ID: 1, OwnerID: 10, Name: "Squats"},
		{ID: 2, OwnerID: 10, Name: "Deadlift"},
	}
	sets := []models.SetDB{
		{ID: 100, ExerciseID: 1, Weight: 60, Repetitions: 5},
		{ID: 101, ExerciseID: 1, Weight: 65, Repetitions: 5},
	}

	mockReader.EXPECT().List(gomock.Any(), int64(10), 0, 100).Return(exercises, nil)
	mockSets.EXPECT().ListByExerciseIDs(gomock.Any(), []int64{1, 2}).Return(sets, nil)

	got, err := svc.List(context.Background(), 10, 0, 100)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, got[0].Sets, 2)
	assert.NotNil(t, got[1].Sets, "exercise without sets should carry an empty slice")
	assert.Len(t, got[1].Sets, 0)
}

func TestExerciseService_List_Errors(t *testing.T) {
	t.Run("reader error", func(t *testing.T) {
		svc, mockReader, _, _, _ := newExerciseService(t)

		mockReader.EXPECT().List(gomock.Any(), int64(10), 0, 100).Return(nil, errors.New("db error"))

		got, err := svc.List(context.Background(), 10, 0, 100)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})

	t.Run("sets reader error", func(t *testing.T) {
		svc, mockReader, _, mockSets, _ := newExerciseService(t)

		mockReader.EXPECT().List(gomock.Any(), int64(10), 0, 100).
			Return([]models.ExerciseDB{{ID: 1, OwnerID: 10}}, nil)
		mockSets.EXPECT().ListByExerciseIDs(gomock.Any(), []int64{1}).Return(nil, errors.New("db error"))

		got, err := svc.List(context.Background(), 10, 0, 100)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})
}

func TestExerciseService_Get(t *testing.T) {
	tests := []struct {
		name     string
		exercise *models.ExerciseDB
		getErr   error
		wantErr  error
	}{
		{
			name:     "found",
			exercise: &models.ExerciseDB{ID: 1, OwnerID: 10, Name: "Squats"},
		},
		{
			name:    "not found",
			wantErr: services.ErrExerciseNotFound,
		},
		{
			name:    "reader error",
			getErr:  errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, _, mockSets, _ := newExerciseService(t)

			mockReader.EXPECT().Get(gomock.Any(), int64(10), int64(1)).Return(tt.exercise, tt.getErr)
			if tt.exercise != nil {
				mockSets.EXPECT().ListByExerciseIDs(gomock.Any(), []int64{1}).
					Return([]models.SetDB{{ID: 100, ExerciseID: 1}}, nil)
			}

			got, err := svc.Get(context.Background(), 10, 1)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.exercise.ID, got.ID)
				assert.Len(t, got.Sets, 1)
			}
		})
	}
}

func TestExerciseService_Create(t *testing.T) {
	svc, _, mockWriter, _, mockKafka := newExerciseService(t)

	desc := "3x5"
	created := &models.ExerciseDB{ID: 1, OwnerID: 10, Name: "Squats", Description: &desc}

	mockWriter.EXPECT().Save(gomock.Any(), int64(10), "Squats", &desc).Return(created, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), 10, "Squats", &desc)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.NotNil(t, got.Sets)
	assert.Len(t, got.Sets, 0)
}

func TestExerciseService_Create_Error(t *testing.T) {
	svc, _, mockWriter, _, _ := newExerciseService(t)

	mockWriter.EXPECT().Save(gomock.Any(), int64(10), "Squats", nil).Return(nil, errors.New("db error"))

	got, err := svc.Create(context.Background(), 10, "Squats", nil)
	assert.EqualError(t, err, "db error")
	assert.Nil(t, got)
}

func TestExerciseService_Create_PublishFailureIgnored(t *testing.T) {
	svc, _, mockWriter, _, mockKafka := newExerciseService(t)

	created := &models.ExerciseDB{ID: 1, OwnerID: 10, Name: "Squats"}

	mockWriter.EXPECT().Save(gomock.Any(), int64(10), "Squats", nil).Return(created, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	got, err := svc.Create(context.Background(), 10, "Squats", nil)
	assert.NoError(t, err, "publish failures must not surface to the caller")
	assert.Equal(t, int64(1), got.ID)
}

func TestExerciseService_Replace(t *testing.T) {
	tests := []struct {
		name      string
		existing  *models.ExerciseDB
		getErr    error
		updateErr error
		wantErr   error
	}{
		{
			name:     "replaced",
			existing: &models.ExerciseDB{ID: 1, OwnerID: 10, Name: "Squats"},
		},
		{
			name:    "not found",
			wantErr: services.ErrExerciseNotFound,
		},
		{
			name:      "update error",
			existing:  &models.ExerciseDB{ID: 1, OwnerID: 10, Name: "Squats"},
			updateErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, mockWriter, mockSets, mockKafka := newExerciseService(t)

			mockReader.EXPECT().Get(gomock.Any(), int64(10), int64(1)).Return(tt.existing, tt.getErr)
			if tt.existing != nil {
				updated := &models.ExerciseDB{ID: 1, OwnerID: 10, Name: "Front Squats"}
				if tt.updateErr != nil {
					updated = nil
				}
				mockWriter.EXPECT().Update(gomock.Any(), int64(1), "Front Squats", nil).
					Return(updated, tt.updateErr)
			}
			if tt.existing != nil && tt.updateErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
				mockSets.EXPECT().ListByExerciseIDs(gomock.Any(), []int64{1}).Return(nil, nil)
			}

			got, err := svc.Replace(context.Background(), 10, 1, "Front Squats", nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Front Squats", got.Name)
			}
		})
	}
}

func TestExerciseService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		existing  *models.ExerciseDB
		deleteErr error
		wantErr   error
	}{
		{
			name:     "deleted",
			existing: &models.ExerciseDB{ID: 1, OwnerID: 10, Name: "Squats"},
		},
		{
			name:    "not found",
			wantErr: services.ErrExerciseNotFound,
		},
		{
			name:      "delete error",
			existing:  &models.ExerciseDB{ID: 1, OwnerID: 10, Name: "Squats"},
			deleteErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, mockWriter, _, mockKafka := newExerciseService(t)

			mockReader.EXPECT().Get(gomock.Any(), int64(10), int64(1)).Return(tt.existing, nil)
			if tt.existing != nil {
				mockWriter.EXPECT().Delete(gomock.Any(), int64(1)).Return(tt.deleteErr)
			}
			if tt.existing != nil && tt.deleteErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Delete(context.Background(), 10, 1)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExerciseService_NilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockExerciseReader(ctrl)
	mockWriter := services.NewMockExerciseWriter(ctrl)
	mockSets := services.NewMockExerciseSetsReader(ctrl)

	svc := services.NewExerciseService(mockReader, mockWriter, mockSets, nil)

	mockWriter.EXPECT().Save(gomock.Any(), int64(10), "Squats", nil).
		Return(&models.ExerciseDB{ID: 1, OwnerID: 10, Name: "Squats"}, nil)

	got, err := svc.Create(context.Background(), 10, "Squats", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

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

func newSetService(t *testing.T) (
	*services.SetService,
	*services.MockSetReader,
	*services.MockSetWriter,
	*services.MockKafkaWriter,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockReader := services.NewMockSetReader(ctrl)
	mockWriter := services.NewMockSetWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewSetService(mockReader, mockWriter, mockKafka)
	return svc, mockReader, mockWriter, mockKafka
}

func TestSetService_Get(t *testing.T) {
	tests := []struct {
		name    string
		set     *models.SetDB
		getErr  error
		wantErr error
	}{
		{
			name: "found",
			set:  &models.SetDB{ID: 100, ExerciseID: 1, Weight: 60, Repetitions: 5},
		},
		{
			name:    "not found",
			wantErr: services.ErrSetNotFound,
		},
		{
			name:    "reader error",
			getErr:  errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, _, _ := newSetService(t)

			mockReader.EXPECT().Get(gomock.Any(), int64(10), int64(1), int64(100)).Return(tt.set, tt.getErr)

			got, err := svc.Get(context.Background(), 10, 1, 100)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.set, got)
			}
		})
	}
}

func TestSetService_Create(t *testing.T) {
	svc, _, mockWriter, mockKafka := newSetService(t)

	created := &models.SetDB{ID: 100, ExerciseID: 1, Weight: 60, Repetitions: 5}

	mockWriter.EXPECT().Save(gomock.Any(), int64(1), 60.0, int64(5)).Return(created, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), 10, 1, 60, 5)
	assert.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSetService_Create_Error(t *testing.T) {
	svc, _, mockWriter, _ := newSetService(t)

	mockWriter.EXPECT().Save(gomock.Any(), int64(1), 60.0, int64(5)).Return(nil, errors.New("db error"))

	got, err := svc.Create(context.Background(), 10, 1, 60, 5)
	assert.EqualError(t, err, "db error")
	assert.Nil(t, got)
}

func TestSetService_Replace(t *testing.T) {
	tests := []struct {
		name      string
		existing  *models.SetDB
		updateErr error
		wantErr   error
	}{
		{
			name:     "replaced",
			existing: &models.SetDB{ID: 100, ExerciseID: 1, Weight: 60, Repetitions: 5},
		},
		{
			name:    "not found",
			wantErr: services.ErrSetNotFound,
		},
		{
			name:      "update error",
			existing:  &models.SetDB{ID: 100, ExerciseID: 1, Weight: 60, Repetitions: 5},
			updateErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, mockWriter, mockKafka := newSetService(t)

			mockReader.EXPECT().Get(gomock.Any(), int64(10), int64(1), int64(100)).Return(tt.existing, nil)
			if tt.existing != nil {
				updated := &models.SetDB{ID: 100, ExerciseID: 1, Weight: 70, Repetitions: 3}
				if tt.updateErr != nil {
					updated = nil
				}
				mockWriter.EXPECT().Update(gomock.Any(), int64(100), 70.0, int64(3)).
					Return(updated, tt.updateErr)
			}
			if tt.existing != nil && tt.updateErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := svc.Replace(context.Background(), 10, 1, 100, 70, 3)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 70.0, got.Weight)
				assert.Equal(t, int64(3), got.Repetitions)
			}
		})
	}
}

func TestSetService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		existing  *models.SetDB
		deleteErr error
		wantErr   error
	}{
		{
			name:     "deleted",
			existing: &models.SetDB{ID: 100, ExerciseID: 1},
		},
		{
			name:    "not found",
			wantErr: services.ErrSetNotFound,
		},
		{
			name:      "delete error",
			existing:  &models.SetDB{ID: 100, ExerciseID: 1},
			deleteErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, mockWriter, mockKafka := newSetService(t)

			mockReader.EXPECT().Get(gomock.Any(), int64(10), int64(1), int64(100)).Return(tt.existing, nil)
			if tt.existing != nil {
				mockWriter.EXPECT().Delete(gomock.Any(), int64(100)).Return(tt.deleteErr)
			}
			if tt.existing != nil && tt.deleteErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Delete(context.Background(), 10, 1, 100)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

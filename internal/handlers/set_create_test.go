package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avolkov/gym-tracker/internal/models"
	"github.com/avolkov/gym-tracker/internal/services"
)

func TestCreateSetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownedExercise := &models.ExerciseWithSets{
		ExerciseDB: models.ExerciseDB{ID: 1, OwnerID: testUser.ID, Name: "Squats"},
		Sets:       []models.SetDB{},
	}

	tests := []struct {
		name         string
		target       string
		body         string
		mockSetup    func(exercises *MockExerciseGetter, sets *MockSetCreator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "success",
			target: "/exercises/1/sets/",
			body:   `{"weight":60,"repetitions":5}`,
			mockSetup: func(exercises *MockExerciseGetter, sets *MockSetCreator) {
				exercises.EXPECT().
					Get(gomock.Any(), testUser.ID, int64(1)).
					Return(ownedExercise, nil)
				sets.EXPECT().
					Create(gomock.Any(), testUser.ID, int64(1), 60.0, int64(5)).
					Return(&models.SetDB{ID: 100, ExerciseID: 1, Weight: 60, Repetitions: 5}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"id": float64(100), "weight": float64(60), "repetitions": float64(5)},
		},
		{
			name:   "exercise not owned",
			target: "/exercises/1/sets/",
			body:   `{"weight":60,"repetitions":5}`,
			mockSetup: func(exercises *MockExerciseGetter, sets *MockSetCreator) {
				exercises.EXPECT().
					Get(gomock.Any(), testUser.ID, int64(1)).
					Return(nil, services.ErrExerciseNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "Exercise not found"},
		},
		{
			name:         "invalid json",
			target:       "/exercises/1/sets/",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid exercise id",
			target:       "/exercises/abc/sets/",
			body:         `{"weight":60,"repetitions":5}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockExercises := NewMockExerciseGetter(ctrl)
			mockSets := NewMockSetCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockExercises, mockSets)
			}

			rec := serveAuthed(http.MethodPost, "/exercises/{exerciseID}/sets/", tt.target,
				bytes.NewBufferString(tt.body), testUser, NewCreateSetHandler(mockExercises, mockSets))

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedBody != nil {
				var got map[string]any
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedBody, got)
			}
		})
	}
}

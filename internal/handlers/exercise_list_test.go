package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avolkov/gym-tracker/internal/models"
)

func TestListExercisesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exercises := []models.ExerciseWithSets{
		{
			ExerciseDB: models.ExerciseDB{ID: 1, OwnerID: testUser.ID, Name: "Squats"},
			Sets: []models.SetDB{
				{ID: 100, ExerciseID: 1, Weight: 60, Repetitions: 5},
			},
		},
		{
			ExerciseDB: models.ExerciseDB{ID: 2, OwnerID: testUser.ID, Name: "Deadlift"},
			Sets:       []models.SetDB{},
		},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockExerciseLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "default pagination",
			target: "/exercises/",
			mockSetup: func(m *MockExerciseLister) {
				m.EXPECT().
					List(gomock.Any(), testUser.ID, defaultSkip, defaultLimit).
					Return(exercises, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "explicit pagination",
			target: "/exercises/?skip=5&limit=2",
			mockSetup: func(m *MockExerciseLister) {
				m.EXPECT().
					List(gomock.Any(), testUser.ID, 5, 2).
					Return([]models.ExerciseWithSets{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "invalid skip",
			target:       "/exercises/?skip=abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid limit",
			target:       "/exercises/?limit=ten",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "service error",
			target: "/exercises/",
			mockSetup: func(m *MockExerciseLister) {
				m.EXPECT().
					List(gomock.Any(), testUser.ID, defaultSkip, defaultLimit).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockExerciseLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rec := serveAuthed(http.MethodGet, "/exercises/", tt.target,
				nil, testUser, NewListExercisesHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var got []ExerciseResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Len(t, got, tt.expectedLen)
				if tt.expectedLen == 2 {
					assert.Equal(t, "Squats", got[0].Name)
					assert.Len(t, got[0].Sets, 1)
					assert.NotNil(t, got[1].Sets)
					assert.Len(t, got[1].Sets, 0)
				}
			}
		})
	}
}

func TestListExercisesHandler_EmptyResultIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExerciseLister(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), testUser.ID, defaultSkip, defaultLimit).
		Return(nil, nil)

	rec := serveAuthed(http.MethodGet, "/exercises/", "/exercises/",
		nil, testUser, NewListExercisesHandler(mockSvc))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

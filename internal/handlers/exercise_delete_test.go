package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avolkov/gym-tracker/internal/services"
)

func TestDeleteExerciseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockExerciseDeleter)
		expectedCode int
	}{
		{
			name:   "deleted",
			target: "/exercises/1",
			mockSetup: func(m *MockExerciseDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), testUser.ID, int64(1)).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "not found",
			target: "/exercises/999",
			mockSetup: func(m *MockExerciseDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), testUser.ID, int64(999)).
					Return(services.ErrExerciseNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			target:       "/exercises/abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "service error",
			target: "/exercises/1",
			mockSetup: func(m *MockExerciseDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), testUser.ID, int64(1)).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockExerciseDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rec := serveAuthed(http.MethodDelete, "/exercises/{exerciseID}", tt.target,
				nil, testUser, NewDeleteExerciseHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

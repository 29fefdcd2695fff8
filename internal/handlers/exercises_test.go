package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/okarpov/exercise-tracker/internal/models"
	"github.com/okarpov/exercise-tracker/internal/services"
)

// postExercise routes the request through chi so the handler sees the {id}
// path parameter.
func postExercise(handler http.HandlerFunc, userID, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/api/users/{id}/exercises", handler)

	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID+"/exercises", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAddExerciseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aliceID := uuid.New()
	alice := &models.UserDB{UserID: aliceID, Username: "alice"}
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success with explicit date", func(t *testing.T) {
		mockSvc := NewMockExerciseAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), aliceID.String(), "run", 30.0, jan1).
			Return(&models.ExerciseDB{
				ExerciseID:  uuid.New(),
				UserID:      aliceID,
				Description: "run",
				Duration:    30,
				Date:        jan1,
			}, alice, nil)

		rr := postExercise(NewAddExerciseHandler(mockSvc), aliceID.String(),
			`{"description":"run","duration":30,"date":"2024-01-01"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp AddExerciseResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, AddExerciseResponse{
			ID:          aliceID.String(),
			Username:    "alice",
			Date:        "Mon Jan 01 2024",
			Duration:    30,
			Description: "run",
		}, resp)
	})

	t.Run("duration as numeric string", func(t *testing.T) {
		mockSvc := NewMockExerciseAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), aliceID.String(), "swim", 45.0, jan1).
			Return(&models.ExerciseDB{Description: "swim", Duration: 45, Date: jan1}, alice, nil)

		rr := postExercise(NewAddExerciseHandler(mockSvc), aliceID.String(),
			`{"description":"swim","duration":"45","date":"2024-01-01"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid date defaults to today", func(t *testing.T) {
		var gotDate time.Time

		mockSvc := NewMockExerciseAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), aliceID.String(), "run", 30.0, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _ float64, date time.Time) (*models.ExerciseDB, *models.UserDB, error) {
				gotDate = date
				return &models.ExerciseDB{Description: "run", Duration: 30, Date: date}, alice, nil
			})

		rr := postExercise(NewAddExerciseHandler(mockSvc), aliceID.String(),
			`{"description":"run","duration":30,"date":"not-a-date"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, time.Now().Format("2006-01-02"), gotDate.Format("2006-01-02"))
	})

	t.Run("absent date defaults to today", func(t *testing.T) {
		var gotDate time.Time

		mockSvc := NewMockExerciseAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), aliceID.String(), "run", 30.0, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _ float64, date time.Time) (*models.ExerciseDB, *models.UserDB, error) {
				gotDate = date
				return &models.ExerciseDB{Description: "run", Duration: 30, Date: date}, alice, nil
			})

		rr := postExercise(NewAddExerciseHandler(mockSvc), aliceID.String(),
			`{"description":"run","duration":30}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, time.Now().Format("2006-01-02"), gotDate.Format("2006-01-02"))
	})

	t.Run("missing description", func(t *testing.T) {
		mockSvc := NewMockExerciseAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), aliceID.String(), "", 30.0, gomock.Any()).
			Return(nil, nil, services.ErrDescriptionRequired)

		rr := postExercise(NewAddExerciseHandler(mockSvc), aliceID.String(),
			`{"duration":30}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"description required"}`, rr.Body.String())
	})

	t.Run("unparseable duration is passed as zero", func(t *testing.T) {
		mockSvc := NewMockExerciseAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), aliceID.String(), "run", 0.0, gomock.Any()).
			Return(nil, nil, services.ErrInvalidDuration)

		rr := postExercise(NewAddExerciseHandler(mockSvc), aliceID.String(),
			`{"description":"run","duration":"thirty"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"duration required and must be a positive number"}`, rr.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		mockSvc := NewMockExerciseAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), "not-a-user", "run", 30.0, gomock.Any()).
			Return(nil, nil, services.ErrUnknownUser)

		rr := postExercise(NewAddExerciseHandler(mockSvc), "not-a-user",
			`{"description":"run","duration":30}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"unknown userId"}`, rr.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockExerciseAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), aliceID.String(), "run", 30.0, gomock.Any()).
			Return(nil, nil, errors.New("database failure"))

		rr := postExercise(NewAddExerciseHandler(mockSvc), aliceID.String(),
			`{"description":"run","duration":30}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"server error"}`, rr.Body.String())
	})
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `30`, 30},
		{"float", `12.5`, 12.5},
		{"quoted string", `"45"`, 45},
		{"garbage", `"thirty"`, 0},
		{"missing", ``, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDuration(json.RawMessage(tt.raw)))
		})
	}
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/okarpov/exercise-tracker/internal/models"
	"github.com/okarpov/exercise-tracker/internal/repositories"
	"github.com/okarpov/exercise-tracker/internal/services"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aliceID := uuid.New()

	t.Run("creates a new user", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "alice").Return(aliceID, nil)

		user, outcome, err := svc.Create(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, services.OutcomeCreated, outcome)
		assert.Equal(t, aliceID, user.UserID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("returns existing user unchanged", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		existing := &models.UserDB{UserID: aliceID, Username: "alice"}
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(existing, nil)

		user, outcome, err := svc.Create(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, services.OutcomeAlreadyExisted, outcome)
		assert.Equal(t, existing, user)
	})

	t.Run("idempotent: same id both times", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "alice").Return(aliceID, nil)
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").
			Return(&models.UserDB{UserID: aliceID, Username: "alice"}, nil)

		first, _, err := svc.Create(context.Background(), "alice")
		assert.NoError(t, err)
		second, _, err := svc.Create(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, first.UserID, second.UserID)
	})

	t.Run("trims the username", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "alice").Return(aliceID, nil)

		user, _, err := svc.Create(context.Background(), "  alice  ")
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("rejects empty and whitespace-only usernames without store calls", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		for _, username := range []string{"", "   ", "\t\n"} {
			user, outcome, err := svc.Create(context.Background(), username)
			assert.ErrorIs(t, err, services.ErrUsernameRequired)
			assert.Equal(t, services.OutcomeFailed, outcome)
			assert.Nil(t, user)
		}
	})

	t.Run("recovers from a concurrent-create conflict by re-fetching", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		winner := &models.UserDB{UserID: aliceID, Username: "alice"}
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "alice").Return(uuid.Nil, repositories.ErrUsernameTaken)
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(winner, nil)

		user, outcome, err := svc.Create(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, services.OutcomeAlreadyExisted, outcome)
		assert.Equal(t, winner, user)
	})

	t.Run("conflict re-fetch failure fails the create", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "alice").Return(uuid.Nil, repositories.ErrUsernameTaken)
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))

		user, outcome, err := svc.Create(context.Background(), "alice")
		assert.EqualError(t, err, "db error")
		assert.Equal(t, services.OutcomeFailed, outcome)
		assert.Nil(t, user)
	})

	t.Run("lookup error", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))

		_, outcome, err := svc.Create(context.Background(), "alice")
		assert.EqualError(t, err, "db error")
		assert.Equal(t, services.OutcomeFailed, outcome)
	})

	t.Run("save error", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), "alice").Return(uuid.Nil, errors.New("save error"))

		_, outcome, err := svc.Create(context.Background(), "alice")
		assert.EqualError(t, err, "save error")
		assert.Equal(t, services.OutcomeFailed, outcome)
	})
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl))

		users := []models.UserDB{
			{UserID: uuid.New(), Username: "alice"},
			{UserID: uuid.New(), Username: "bob"},
		}
		mockReader.EXPECT().List(gomock.Any()).Return(users, nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("error", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl))

		mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.List(context.Background())
		assert.EqualError(t, err, "db error")
	})
}

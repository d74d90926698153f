//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"pcapi/internal/infra"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateUserBeneficiary(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserBeneficiaryParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) FindUserByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, testUserID).Return(tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateLastLogin(context.Background(), nil, testUserID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByIDForUpdate(t *testing.T) {
	userID := uuid.New()
	dob := time.Date(2006, 4, 12, 0, 0, 0, 0, time.UTC)

	t.Run("maps identity columns", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("FindUserByIDForUpdate", mock.Anything, mock.Anything, userID).Return(sqlc.Users{
			ID:          userID,
			Email:       "jeune@example.com",
			Role:        "underage_beneficiary",
			FirstName:   pgtype.Text{String: "Jeanne", Valid: true},
			LastName:    pgtype.Text{String: "Doux", Valid: true},
			DateOfBirth: pgconv.DatePtrToPgtype(&dob),
			IsActive:    true,
			CreatedAt:   pgconv.TimeToPgtype(dob),
		}, nil)

		u, err := NewUserRepository(mockQueries).FindByIDForUpdate(context.Background(), nil, userID)

		require.NoError(t, err)
		assert.Equal(t, "underage_beneficiary", u.Role().String())
		assert.Equal(t, "Jeanne", u.Identity().FirstName)
		require.NotNil(t, u.Identity().DateOfBirth)
		assert.True(t, dob.Equal(*u.Identity().DateOfBirth))
		assert.Nil(t, u.Identity().IDPieceNumber)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("FindUserByIDForUpdate", mock.Anything, mock.Anything, userID).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries).FindByIDForUpdate(context.Background(), nil, userID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOptionalText(t *testing.T) {
	assert.False(t, optionalText("").Valid)
	assert.Equal(t, pgtype.Text{String: "75", Valid: true}, optionalText("75"))
}

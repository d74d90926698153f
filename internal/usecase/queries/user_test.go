//go:build unit

package queries_test

import (
	"context"
	"testing"

	"pcapi/internal/infra"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase/queries"
	mock_queries "pcapi/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetCurrentUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		view    *queries.AuthorizedUserView
		repoErr error
		check   func(t *testing.T, got *queries.AuthorizedUserView, err error)
	}{
		{
			name: "active beneficiary",
			view: &queries.AuthorizedUserView{ID: userID, Role: "beneficiary", IsActive: true},
			check: func(t *testing.T, got *queries.AuthorizedUserView, err error) {
				require.NoError(t, err)
				assert.Equal(t, "beneficiary", got.Role)
			},
		},
		{
			name: "deactivated account",
			view: &queries.AuthorizedUserView{ID: userID, IsActive: false},
			check: func(t *testing.T, _ *queries.AuthorizedUserView, err error) {
				assert.ErrorIs(t, err, queries.ErrUserInactive)
			},
		},
		{
			name:    "deleted account",
			repoErr: infra.WrapRepoErr("find user", assert.AnError, infra.KindNotFound),
			check: func(t *testing.T, _ *queries.AuthorizedUserView, err error) {
				assert.True(t, errs.Is(err, errs.ErrUserNotFound))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_queries.NewMockUserReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), userID).Return(tt.view, tt.repoErr)

			got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), userID)

			tt.check(t, got, err)
		})
	}
}

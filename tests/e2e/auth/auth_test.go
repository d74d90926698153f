//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"pcapi/internal/domain/user"
	"pcapi/internal/handler/dto/request"
	"pcapi/internal/handler/dto/response"
	"pcapi/tests/common/authtest"
	"pcapi/tests/common/dbtest"
	"pcapi/tests/common/httptest"
	"pcapi/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateBeneficiary(s.T(), s.DB, "jeune@example.com", "300")
	dbtest.CreateTestUser(s.T(), s.DB, "pro@example.com", string(user.RolePro))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleUser))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		expectedCode   string
	}{
		{name: "beneficiary logs in", email: "jeune@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "email is case insensitive", email: "Jeune@Example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: "password123", expectedStatus: http.StatusUnauthorized, expectedCode: "invalidCredentials"},
		{name: "wrong password", email: "jeune@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized, expectedCode: "invalidCredentials"},
		{name: "inactive user", email: "inactive@example.com", password: "password123", expectedStatus: http.StatusForbidden, expectedCode: "userInactive"},
		{name: "empty email", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "jeune@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			if tt.expectedStatus != http.StatusOK {
				require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
				if tt.expectedCode != "" {
					httptest.AssertErrorCode(t, w, tt.expectedStatus, tt.expectedCode)
				}
				return
			}

			var res response.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, "beneficiary", res.User.Role)
			require.Equal(t, "Jeanne", res.User.FirstName)
			require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = 'jeune@example.com'").Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login not updated")
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh cookie issues a new access token", func() {
		t := s.T()
		cookies := authtest.LoginCookies(t, s.Router, "jeune@example.com", "password123")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")

		var res response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("refresh picks up an upgraded role", func() {
		t := s.T()
		cookies := authtest.LoginCookies(t, s.Router, "pro@example.com", "password123")
		_, err := s.DB.Exec(t.Context(), "UPDATE users SET role = 'admin' WHERE email = 'pro@example.com'")
		require.NoError(t, err)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		var res response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, res.AccessToken)
		require.Equal(t, http.StatusOK, me.Code)
		require.Contains(t, me.Body.String(), `"role":"admin"`)
	})

	s.Run("access token is not a refresh token", func() {
		t := s.T()
		access := authtest.LoginUser(t, s.Router, "jeune@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: access}, "")

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "invalidToken")
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")

		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "unauthenticated")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the cookies", func() {
		t := s.T()
		cookies := authtest.LoginCookies(t, s.Router, "jeune@example.com", "password123")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, cookies, "")

		require.Equal(t, http.StatusNoContent, w.Code)
		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "invalid-token")

		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the identity without secrets", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "jeune@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var me response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "jeune@example.com", me.Email)
		require.Equal(t, "75", me.DepartmentCode)
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("expired token", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleAdmin))
		expired := s.jwt.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "invalidToken")
	})

	s.Run("refresh token is not an access token", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "refresh@example.com", string(user.RolePro))
		refresh := s.jwt.GenerateRefreshToken(t, userID, user.RolePro)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refresh)

		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, "invalidToken")
	})

	s.Run("token of a deleted account", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleBeneficiary)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorCode(t, w, http.StatusNotFound, "userNotFound")
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")

		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

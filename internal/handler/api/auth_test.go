//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"pcapi/internal/domain/user"
	"pcapi/internal/handler/api"
	resdto "pcapi/internal/handler/dto/response"
	"pcapi/internal/pkg/config"
	"pcapi/internal/pkg/cookie"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/pkg/jwt"
	"pcapi/internal/usecase/commands"
	"pcapi/internal/usecase/queries"
	"pcapi/tests/common/builder"
	"pcapi/tests/common/httptest"
	"pcapi/tests/common/testutil"
	commandsmock "pcapi/tests/mock/commands"
	queriesmock "pcapi/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockAuthCommands
	users    *queriesmock.MockUserQueries
	me       *queries.AuthorizedUserView
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.users = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.me = builder.NewUserBuilder().AsBeneficiary(time.Date(2007, 3, 1, 0, 0, 0, 0, time.UTC)).BuildReadModel()

	h := api.NewAuthHandler(s.cmds, s.users, jwt.NewService("unit-secret", 15*time.Minute, 24*time.Hour), config.NewTestConfig())

	s.router = gin.New()
	s.router.POST("/auth/login", h.Login)
	s.router.POST("/auth/refresh", h.Refresh)
	s.router.POST("/auth/logout", h.Logout)
	// Stands in for the auth middleware: a bearer header means an authenticated caller.
	s.router.GET("/auth/me", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.me.ID)
			c.Set("user_role", user.RoleBeneficiary)
		}
	}, h.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) loginOK() {
	s.cmds.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&commands.LoginResult{
		UserID:    s.me.ID,
		Role:      user.RoleBeneficiary,
		TokenPair: &commands.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}, nil)
	s.users.EXPECT().GetCurrentUser(gomock.Any(), s.me.ID).Return(s.me, nil)
}

func (s *AuthHandlerTestSuite) TestLogin() {
	req := builder.NewAuthBuilder().BuildDTO()

	s.Run("sets both cookies and returns the profile", func() {
		s.loginOK()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", req, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("access", body.AccessToken)
		s.Equal(s.me.Email, body.User.Email)
		s.Equal("access", httptest.ExtractCookie(rec, cookie.AccessTokenCookieName).Value)
		s.Equal("refresh", httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).Value)
		s.True(httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).HttpOnly)
	})

	s.Run("request validation", func() {
		tests := []struct {
			name   string
			mutate func(map[string]any)
			ok     bool
		}{
			{name: "eight character password", mutate: testutil.Field("password", "motdepas"), ok: true},
			{name: "seven character password", mutate: testutil.Field("password", "motdepa")},
			{name: "malformed email", mutate: testutil.Field("email", "jeune.example.com")},
			{name: "no email", mutate: testutil.Field("email", nil)},
			{name: "no password", mutate: testutil.Field("password", nil)},
			{name: "blank email", mutate: testutil.Field("email", "")},
		}
		for _, tt := range tests {
			s.Run(tt.name, func() {
				if tt.ok {
					s.loginOK()
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", testutil.DtoMap(s.T(), req, tt.mutate), "")
				if tt.ok {
					s.Equal(http.StatusOK, rec.Code)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
				}
			})
		}
	})

	s.Run("command errors", func() {
		tests := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "wrong password", err: commands.ErrInvalidCredentials, status: http.StatusUnauthorized, code: "invalidCredentials"},
			{name: "unknown email", err: errs.ErrUserNotFound, status: http.StatusUnauthorized, code: "invalidCredentials"},
			{name: "deactivated account", err: commands.ErrUserInactive, status: http.StatusForbidden, code: "userInactive"},
			{name: "database down", err: errors.New("connection refused"), status: http.StatusInternalServerError},
		}
		for _, tt := range tests {
			s.Run(tt.name, func() {
				s.cmds.EXPECT().Login(gomock.Any(), req).Return(nil, tt.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", req, "")
				if tt.code != "" {
					httptest.AssertErrorCode(s.T(), rec, tt.status, tt.code)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tt.status, "Internal server error")
				}
				s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("cookie wins over body", func() {
		s.cmds.EXPECT().RefreshToken(gomock.Any(), "from-cookie").
			Return(&commands.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "from-cookie"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh",
			map[string]any{"refresh_token": "from-body"}, cookies, "")

		var body resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("a2", body.AccessToken)
		s.Equal("r2", httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).Value)
	})

	s.Run("body fallback", func() {
		s.cmds.EXPECT().RefreshToken(gomock.Any(), "from-body").
			Return(&commands.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": "from-body"}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("no token at all", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "unauthenticated")
	})

	s.Run("rejected token clears the cookies", func() {
		s.cmds.EXPECT().RefreshToken(gomock.Any(), "stale").Return(nil, commands.ErrTokenValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": "stale"}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "invalidToken")
		s.Equal(-1, httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).MaxAge)
	})

	s.Run("account deactivated since login", func() {
		s.cmds.EXPECT().RefreshToken(gomock.Any(), "r").Return(nil, commands.ErrUserInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": "r"}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "userInactive")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(-1, httptest.ExtractCookie(rec, cookie.AccessTokenCookieName).MaxAge)
	s.Equal(-1, httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the caller", func() {
		s.users.EXPECT().GetCurrentUser(gomock.Any(), s.me.ID).Return(s.me, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.me.Email, body["email"])
		s.NotContains(body, "password")
	})

	s.Run("no caller in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("query errors", func() {
		tests := []struct {
			name   string
			err    error
			status int
		}{
			{name: "deleted user", err: errs.Mark(errors.New("no rows"), errs.ErrUserNotFound), status: http.StatusNotFound},
			{name: "deactivated user", err: queries.ErrUserInactive, status: http.StatusForbidden},
			{name: "database down", err: errors.New("connection refused"), status: http.StatusInternalServerError},
		}
		for _, tt := range tests {
			s.Run(tt.name, func() {
				s.users.EXPECT().GetCurrentUser(gomock.Any(), s.me.ID).Return(nil, tt.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")
				s.Equal(tt.status, rec.Code, rec.Body.String())
			})
		}
	})
}

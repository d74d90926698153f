//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pcapi/internal/domain/user"
	"pcapi/internal/handler/middleware"
	"pcapi/internal/pkg/cookie"
	httptestutil "pcapi/tests/common/httptest"
	usecasemock "pcapi/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, guards ...func(*middleware.AuthMiddleware) gin.HandlerFunc) (*gin.Engine, *usecasemock.MockTokenValidator) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	m := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	handlers := []gin.HandlerFunc{m.RequireAuth()}
	for _, g := range guards {
		handlers = append(handlers, g(m))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
	})
	router.GET("/protected", handlers...)
	return router, validator
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("bearer header", func(t *testing.T) {
		router, validator := newRouter(t)
		validator.EXPECT().ValidateToken("good-token").Return(userID, user.RoleBeneficiary, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var body map[string]string
		httptestutil.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "beneficiary", body["role"])
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		router, validator := newRouter(t)
		validator.EXPECT().ValidateToken("cookie-token").Return(userID, user.RolePro, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		router, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		httptestutil.AssertErrorCode(t, w, http.StatusUnauthorized, "unauthenticated")
	})

	t.Run("invalid token", func(t *testing.T) {
		router, validator := newRouter(t)
		validator.EXPECT().ValidateToken("expired").Return(uuid.Nil, user.Role(""), errors.New("token is expired"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		httptestutil.AssertErrorCode(t, w, http.StatusUnauthorized, "invalidToken")
	})
}

func TestRoleGuards(t *testing.T) {
	beneficiaryOnly := func(m *middleware.AuthMiddleware) gin.HandlerFunc {
		return m.RequireAnyRole(user.RoleBeneficiary, user.RoleUnderageBeneficiary)
	}
	proOrAbove := func(m *middleware.AuthMiddleware) gin.HandlerFunc {
		return m.RequireRoleAtLeast(user.RolePro)
	}

	tests := []struct {
		name   string
		guard  func(*middleware.AuthMiddleware) gin.HandlerFunc
		role   user.Role
		status int
	}{
		{"beneficiary books", beneficiaryOnly, user.RoleBeneficiary, http.StatusOK},
		{"underage beneficiary books", beneficiaryOnly, user.RoleUnderageBeneficiary, http.StatusOK},
		{"admin does not own a wallet", beneficiaryOnly, user.RoleAdmin, http.StatusForbidden},
		{"plain user does not own a wallet", beneficiaryOnly, user.RoleUser, http.StatusForbidden},
		{"pro validates", proOrAbove, user.RolePro, http.StatusOK},
		{"admin validates", proOrAbove, user.RoleAdmin, http.StatusOK},
		{"beneficiary cannot validate", proOrAbove, user.RoleBeneficiary, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, validator := newRouter(t, tt.guard)
			validator.EXPECT().ValidateToken("token").Return(uuid.New(), tt.role, nil)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer token")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if tt.status == http.StatusOK {
				assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
			} else {
				httptestutil.AssertErrorCode(t, w, tt.status, "forbidden")
			}
		})
	}
}

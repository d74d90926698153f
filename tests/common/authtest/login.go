//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"pcapi/internal/handler/dto/request"
	"pcapi/internal/pkg/cookie"
	"pcapi/tests/common/dbtest"
	"pcapi/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// FixturePassword is the clear text behind every fixture user's hash.
const FixturePassword = "password123"

// LoginCookies posts to the login route and returns the token cookies it set.
func LoginCookies(t *testing.T, router *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, rec.Code, "login %s: %s", email, rec.Body.String())
	return httptest.ExtractCookies(rec)
}

// LoginUser returns an access token usable as a bearer header.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	for _, c := range LoginCookies(t, router, email, password) {
		if c.Name == cookie.AccessTokenCookieName && c.Value != "" {
			return c.Value
		}
	}
	require.FailNow(t, "login set no access token cookie", email)
	return ""
}

// CreateAndLogin inserts an active user with the fixture password and logs in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, FixturePassword)
}

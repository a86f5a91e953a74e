package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptcpms/personnel-backend-go/internal/domain/user"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/jwt"
)

const (
	middlewareTestSecret     = "test-secret-key-for-jwt"
	middlewareTestAccessExp  = "1h"
	middlewareTestRefreshExp = "24h"
)

// protectedEndpoint wires a stub handler behind the same middleware chain the
// router uses: Verifier → AuthRequired (→ AdminOnly). The stub records the
// actor id it saw.
func protectedEndpoint(jwtService jwt.Service, adminOnly bool) (http.Handler, *string) {
	var actorID string
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID = ActorID(r)
		w.WriteHeader(http.StatusOK)
	})
	if adminOnly {
		h = AdminOnly(h)
	}
	h = AuthRequired(jwtService.JWTAuth())(h)
	h = jwtauth.Verifier(jwtService.JWTAuth())(h)
	return h, &actorID
}

func doRequest(t *testing.T, h http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	jwtService := jwt.NewJWTService(middlewareTestSecret, middlewareTestAccessExp, middlewareTestRefreshExp)
	handler, actorID := protectedEndpoint(jwtService, false)

	t.Run("missing token is unauthorized", func(t *testing.T) {
		rec := doRequest(t, handler, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		rec := doRequest(t, handler, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another key is unauthorized", func(t *testing.T) {
		other := jwt.NewJWTService("some-other-secret-key", middlewareTestAccessExp, middlewareTestRefreshExp)
		token, _, err := other.GenerateAccessToken("u-1", "admin@ptc.gov.in", user.RoleAdmin)
		require.NoError(t, err)

		rec := doRequest(t, handler, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token cannot reach protected routes", func(t *testing.T) {
		token, _, err := jwtService.GenerateRefreshToken("u-1")
		require.NoError(t, err)

		rec := doRequest(t, handler, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("access token passes and carries the actor", func(t *testing.T) {
		token, _, err := jwtService.GenerateAccessToken("u-1", "admin@ptc.gov.in", user.RoleAdmin)
		require.NoError(t, err)

		rec := doRequest(t, handler, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u-1", *actorID)
	})
}

func TestAdminOnly(t *testing.T) {
	jwtService := jwt.NewJWTService(middlewareTestSecret, middlewareTestAccessExp, middlewareTestRefreshExp)
	handler, _ := protectedEndpoint(jwtService, true)

	t.Run("operator is forbidden", func(t *testing.T) {
		token, _, err := jwtService.GenerateAccessToken("u-2", "operator@ptc.gov.in", user.RoleOperator)
		require.NoError(t, err)

		rec := doRequest(t, handler, token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, _, err := jwtService.GenerateAccessToken("u-1", "admin@ptc.gov.in", user.RoleAdmin)
		require.NoError(t, err)

		rec := doRequest(t, handler, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token never reaches the role check", func(t *testing.T) {
		rec := doRequest(t, handler, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

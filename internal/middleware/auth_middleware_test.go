package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/andrewbantly/leasepeek-server/internal/dtos"
	"github.com/andrewbantly/leasepeek-server/internal/models"
	"github.com/andrewbantly/leasepeek-server/internal/services"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// stubAuth validates any token equal to "good-token".
type stubAuth struct {
	userID uuid.UUID
	err    error
}

func (s *stubAuth) Register(context.Context, dtos.RegisterRequest) (*models.User, services.TokenPair, error) {
	return nil, services.TokenPair{}, nil
}

func (s *stubAuth) Login(context.Context, string, string) (*models.User, services.TokenPair, error) {
	return nil, services.TokenPair{}, nil
}

func (s *stubAuth) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if s.err != nil {
		return uuid.Nil, "", s.err
	}
	if token != "good-token" {
		return uuid.Nil, "", jwt.ErrTokenMalformed
	}
	return s.userID, "alice", nil
}

func runMiddleware(t *testing.T, auth services.AuthService, header string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/data/user", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	AuthMiddleware(auth)(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestAuthMiddlewarePassesSubjectThrough(t *testing.T) {
	userID := uuid.New()
	rec, captured := runMiddleware(t, &stubAuth{userID: userID}, "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	require.Equal(t, userID.String(), captured.Context().Value(utils.CtxKeyUserID))
	require.Equal(t, "alice", captured.Context().Value(utils.CtxKeyUsername))
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	rec, captured := runMiddleware(t, &stubAuth{userID: uuid.New()}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Nil(t, captured)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	rec, captured := runMiddleware(t, &stubAuth{userID: uuid.New()}, "Bearer bad-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Nil(t, captured)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	rec, _ := runMiddleware(t, &stubAuth{err: jwt.ErrTokenExpired}, "Bearer good-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Token expired")
}

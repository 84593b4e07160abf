package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func sessionClaims(userID string, ttl time.Duration) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
}

func runSession(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotUserID string
	handler := SessionMiddleware(testSecret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, gotUserID
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Message
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	token := signedToken(t, testSecret, sessionClaims("u-1", time.Hour))

	rec, userID := runSession(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", userID)
}

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	rec, _ := runSession(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "login required", errorMessage(t, rec))
}

func TestSessionMiddleware_MalformedHeader(t *testing.T) {
	rec, _ := runSession(t, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid authorization header format", errorMessage(t, rec))
}

func TestSessionMiddleware_WrongSecret(t *testing.T) {
	token := signedToken(t, "other-secret", sessionClaims("u-1", time.Hour))

	rec, _ := runSession(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid session token", errorMessage(t, rec))
}

func TestSessionMiddleware_ExpiredToken(t *testing.T) {
	token := signedToken(t, testSecret, sessionClaims("u-1", -time.Hour))

	rec, _ := runSession(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "session expired", errorMessage(t, rec))
}

func TestSessionMiddleware_MissingUserIDClaim(t *testing.T) {
	now := time.Now()
	token := signedToken(t, testSecret, jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})

	rec, _ := runSession(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid session token", errorMessage(t, rec))
}

func TestGetUserID_AbsentFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserID(req.Context())
	assert.False(t, ok)
}

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID uuid.UUID
}

func (s stubClaims) GetUserID() uuid.UUID { return s.userID }

type stubValidator struct {
	userID uuid.UUID
	err    error
	seen   string
}

func (s *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	s.seen = tokenString
	if s.err != nil {
		return nil, s.err
	}
	return stubClaims{userID: s.userID}, nil
}

func runAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/score", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	Auth(validator)(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, captured := runAuth(t, &stubValidator{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc123", "Bearer a b", "justatoken"} {
		rec, captured := runAuth(t, &stubValidator{}, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Nil(t, captured)
	}
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	userID := uuid.New()
	for _, prefix := range []string{"Bearer", "bearer", "BEARER"} {
		validator := &stubValidator{userID: userID}
		rec, _ := runAuth(t, validator, prefix+" token123")
		assert.Equal(t, http.StatusOK, rec.Code, "prefix %q", prefix)
		assert.Equal(t, "token123", validator.seen)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &stubValidator{err: errors.New("signature mismatch")}
	rec, captured := runAuth(t, validator, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuth_ValidTokenSetsUserID(t *testing.T) {
	userID := uuid.New()
	rec, captured := runAuth(t, &stubValidator{userID: userID}, "Bearer good-token")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)

	got, err := GetUserID(captured)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}

func TestWithUserID(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUserID(req.Context(), userID))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

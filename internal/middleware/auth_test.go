package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mreyes/gearvault-backend/internal/models"
	"github.com/mreyes/gearvault-backend/internal/services"
)

const testSecret = "test-secret"

func authedHandler(t *testing.T, lookup UserLookup) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFrom(r.Context())
		require.NotNil(t, user)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(user.Email))
	})
	return Auth(testSecret, lookup)(next)
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["message"]
}

func TestAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	handler := authedHandler(t, func(ctx context.Context, id string) (*models.User, error) {
		t.Fatal("lookup must not run without a token")
		return nil, nil
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authentication required", errorMessage(t, rec))
}

func TestAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	handler := authedHandler(t, func(ctx context.Context, id string) (*models.User, error) {
		t.Fatal("lookup must not run for a malformed header")
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_BadToken(t *testing.T) {
	t.Parallel()

	handler := authedHandler(t, func(ctx context.Context, id string) (*models.User, error) {
		t.Fatal("lookup must not run for an unverifiable token")
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", errorMessage(t, rec))
}

func TestAuth_DeletedUser(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	token, err := services.GenerateToken(userID.Hex(), testSecret)
	require.NoError(t, err)

	handler := authedHandler(t, func(ctx context.Context, id string) (*models.User, error) {
		return nil, errors.New("user not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", errorMessage(t, rec))
}

func TestAuth_Success(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	token, err := services.GenerateToken(userID.Hex(), testSecret)
	require.NoError(t, err)

	handler := authedHandler(t, func(ctx context.Context, id string) (*models.User, error) {
		assert.Equal(t, userID.Hex(), id)
		return &models.User{ID: userID, Email: "alice@x.com"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@x.com", rec.Body.String())
}

package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodToken = "good-token"

// fakeServer serves just enough of the REST surface for session tests.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+goodToken {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid or expired token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": map[string]string{"id": "u1", "name": "Alice", "email": "alice@x.com"},
		})
	})

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["email"] != "alice@x.com" || body["password"] != "secret1" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": goodToken,
			"user":  map[string]string{"id": "u1", "name": "Alice", "email": "alice@x.com"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestSession(t *testing.T) (*Session, string) {
	t.Helper()
	srv := fakeServer(t)
	tokenPath := filepath.Join(t.TempDir(), "token")
	return NewSession(NewAPI(srv.URL), tokenPath), tokenPath
}

func TestSession_StartWithoutToken(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession(t)
	require.NoError(t, session.Start())
	assert.Equal(t, StateAnonymous, session.State())
	assert.Nil(t, session.User())
}

func TestSession_StartWithBadToken(t *testing.T) {
	t.Parallel()

	session, tokenPath := newTestSession(t)
	require.NoError(t, os.WriteFile(tokenPath, []byte("stale-token"), 0o600))

	require.NoError(t, session.Start())

	assert.Equal(t, StateAnonymous, session.State())
	_, err := os.Stat(tokenPath)
	assert.True(t, os.IsNotExist(err), "a rejected token must be discarded")
}

func TestSession_StartWithValidToken(t *testing.T) {
	t.Parallel()

	session, tokenPath := newTestSession(t)
	require.NoError(t, os.WriteFile(tokenPath, []byte(goodToken), 0o600))

	require.NoError(t, session.Start())

	assert.Equal(t, StateAuthenticated, session.State())
	require.NotNil(t, session.User())
	assert.Equal(t, "alice@x.com", session.User().Email)
}

func TestSession_LoginPersistsToken(t *testing.T) {
	t.Parallel()

	session, tokenPath := newTestSession(t)
	require.NoError(t, session.Start())

	require.NoError(t, session.Login("alice@x.com", "secret1"))
	assert.Equal(t, StateAuthenticated, session.State())

	data, err := os.ReadFile(tokenPath)
	require.NoError(t, err)
	assert.Equal(t, goodToken, string(data))
}

func TestSession_LoginFailureStaysAnonymous(t *testing.T) {
	t.Parallel()

	session, _ := newTestSession(t)
	require.NoError(t, session.Start())

	err := session.Login("alice@x.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Equal(t, StateAnonymous, session.State())
	assert.Error(t, session.Require())
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()

	session, tokenPath := newTestSession(t)
	require.NoError(t, session.Start())
	require.NoError(t, session.Login("alice@x.com", "secret1"))

	require.NoError(t, session.Logout())

	assert.Equal(t, StateAnonymous, session.State())
	assert.Nil(t, session.User())
	_, err := os.Stat(tokenPath)
	assert.True(t, os.IsNotExist(err))
}

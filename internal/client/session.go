package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// State is the client's view of who the current user is.
type State int

const (
	StateAnonymous State = iota
	StateLoading
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

var ErrNotAuthenticated = errors.New("not logged in")

// Session is the single source of truth for the current user. It seeds
// itself from the persisted token on Start and owns all transitions:
// anonymous → loading → authenticated, or back to anonymous on any failure.
type Session struct {
	mu        sync.Mutex
	state     State
	user      *User
	api       *API
	tokenPath string
}

func NewSession(api *API, tokenPath string) *Session {
	return &Session{
		state:     StateAnonymous,
		api:       api,
		tokenPath: tokenPath,
	}
}

// DefaultTokenPath is the durable local storage slot for the bearer token.
func DefaultTokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gearvault", "token"), nil
}

// Start loads a persisted token, if any, and tries to resolve it to a user
// profile. An unusable token is discarded and the session stays anonymous.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.tokenPath)
	if err != nil {
		s.state = StateAnonymous
		return nil
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		s.state = StateAnonymous
		return nil
	}

	s.state = StateLoading
	s.api.SetToken(token)

	user, err := s.api.Me()
	if err != nil {
		s.api.SetToken("")
		os.Remove(s.tokenPath)
		s.state = StateAnonymous
		s.user = nil
		return nil
	}

	s.state = StateAuthenticated
	s.user = user
	return nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the current user, or nil when not authenticated.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) Login(email, password string) error {
	result, err := s.api.Login(email, password)
	if err != nil {
		return err
	}
	return s.adopt(result)
}

func (s *Session) Register(name, email, password string) error {
	result, err := s.api.Register(name, email, password)
	if err != nil {
		return err
	}
	return s.adopt(result)
}

// adopt installs a fresh token+user pair and persists the token.
func (s *Session) adopt(result *AuthResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.api.SetToken(result.Token)
	s.state = StateAuthenticated
	s.user = &result.User

	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.tokenPath, []byte(result.Token), 0o600)
}

// Logout clears the session and the persisted token.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.api.SetToken("")
	s.state = StateAnonymous
	s.user = nil

	err := os.Remove(s.tokenPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Require returns an error unless the session is authenticated. Gated
// commands call this before touching the API.
func (s *Session) Require() error {
	if s.State() != StateAuthenticated {
		return ErrNotAuthenticated
	}
	return nil
}

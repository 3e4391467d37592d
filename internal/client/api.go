// Package client is a thin consumer of the GearVault REST surface, used by
// the command line client. It talks JSON over HTTP and surfaces server
// {message} bodies verbatim.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type API struct {
	baseURL string
	httpc   *http.Client
	token   string
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token sent on subsequent requests.
func (a *API) SetToken(token string) { a.token = token }

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Gear struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Brand     string   `json:"brand"`
	Model     string   `json:"model"`
	Condition string   `json:"condition"`
	Images    []string `json:"images"`
}

type Reminder struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
}

func (a *API) do(method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, a.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (a *API) Register(name, email, password string) (*AuthResult, error) {
	var result AuthResult
	err := a.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *API) Login(email, password string) (*AuthResult, error) {
	var result AuthResult
	err := a.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Me resolves the current token to a user profile.
func (a *API) Me() (*User, error) {
	var result struct {
		User User `json:"user"`
	}
	if err := a.do(http.MethodGet, "/api/auth/me", nil, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

func (a *API) ForgotPassword(email string) (string, error) {
	var result struct {
		Message    string `json:"message"`
		ResetToken string `json:"resetToken"`
	}
	err := a.do(http.MethodPost, "/api/auth/forgot-password", map[string]string{"email": email}, &result)
	if err != nil {
		return "", err
	}
	return result.ResetToken, nil
}

func (a *API) ResetPassword(token, password string) error {
	return a.do(http.MethodPost, "/api/auth/reset-password", map[string]string{
		"token": token, "password": password,
	}, nil)
}

func (a *API) ListGear() ([]Gear, error) {
	var gear []Gear
	if err := a.do(http.MethodGet, "/api/gear", nil, &gear); err != nil {
		return nil, err
	}
	return gear, nil
}

func (a *API) CreateGear(name, gearType string) (*Gear, error) {
	var gear Gear
	err := a.do(http.MethodPost, "/api/gear", map[string]string{
		"name": name, "type": gearType,
	}, &gear)
	if err != nil {
		return nil, err
	}
	return &gear, nil
}

func (a *API) DeleteGear(id string) error {
	return a.do(http.MethodDelete, "/api/gear/"+id, nil, nil)
}

func (a *API) ListReminders() ([]Reminder, error) {
	var reminders []Reminder
	if err := a.do(http.MethodGet, "/api/reminders", nil, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (a *API) CompleteReminder(id string) (*Reminder, error) {
	var reminder Reminder
	if err := a.do(http.MethodPut, "/api/reminders/"+id+"/complete", nil, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

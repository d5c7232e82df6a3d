package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"supafix/internal/config"
)

type Client struct {
	config *config.Config
}

type SupabaseError struct {
	StatusCode int
	Message    string
}

func (e *SupabaseError) Error() string {
	return fmt.Sprintf("supabase error (status %d): %s", e.StatusCode, e.Message)
}

func NewClient(cfg *config.Config) *Client {
	return &Client{config: cfg}
}

type User struct {
	ID               string                 `json:"id"`
	Email            string                 `json:"email"`
	EmailConfirmedAt *string                `json:"email_confirmed_at"`
	UserMetadata     map[string]interface{} `json:"user_metadata,omitempty"`
}

// Confirmed reports whether the user's email has been verified. A missing
// key and an explicit null are equivalent: both mean unconfirmed.
func (u *User) Confirmed() bool {
	return u.EmailConfirmedAt != nil && *u.EmailConfirmedAt != ""
}

type listUsersResponse struct {
	Users []User `json:"users"`
}

// AdminListUsers fetches every user record via the admin API. GoTrue versions
// differ on the response shape: some return {"users": [...]}, older ones a
// bare array. Both are normalized to a single slice here so callers never
// see the difference.
func (s *Client) AdminListUsers() ([]User, error) {
	url := fmt.Sprintf("%s/auth/v1/admin/users", s.config.Supabase.URL)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	s.setAdminHeaders(req)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newSupabaseError(resp.StatusCode, body)
	}

	return normalizeUserList(body)
}

func normalizeUserList(body []byte) ([]User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var users []User
		if err := json.Unmarshal(trimmed, &users); err != nil {
			return nil, fmt.Errorf("unexpected user list response: %w", err)
		}
		return users, nil
	}

	// An object without a "users" key decodes as zero users.
	var wrapped listUsersResponse
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("unexpected user list response: %w", err)
	}
	return wrapped.Users, nil
}

type UserUpdate struct {
	EmailConfirmedAt string `json:"email_confirmed_at,omitempty"`
	Password         string `json:"password,omitempty"`
}

// AdminUpdateUser patches a single user record via the admin API.
func (s *Client) AdminUpdateUser(userID string, update UserUpdate) (*User, error) {
	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", s.config.Supabase.URL, userID)
	reqBody, _ := json.Marshal(update)

	req, err := http.NewRequest("PUT", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}

	s.setAdminHeaders(req)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newSupabaseError(resp.StatusCode, body)
	}

	var result User
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type AdminCreateUserRequest struct {
	Email        string                 `json:"email"`
	Password     string                 `json:"password"`
	EmailConfirm bool                   `json:"email_confirm"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}

// AdminCreateUser provisions a user with a pre-confirmed email so the
// account is immediately able to log in.
func (s *Client) AdminCreateUser(email, password string, userMetadata map[string]interface{}) (*User, error) {
	url := fmt.Sprintf("%s/auth/v1/admin/users", s.config.Supabase.URL)
	reqBody, _ := json.Marshal(AdminCreateUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: userMetadata,
	})

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}

	s.setAdminHeaders(req)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, newSupabaseError(resp.StatusCode, body)
	}

	var result User
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SignIn performs a password-grant token request with the anon key.
func (s *Client) SignIn(email, password string) (*SignInResponse, error) {
	url := fmt.Sprintf("%s/auth/v1/token?grant_type=password", s.config.Supabase.URL)
	reqBody, _ := json.Marshal(SignInRequest{
		Email:    email,
		Password: password,
	})

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", s.config.Supabase.AnonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newSupabaseError(resp.StatusCode, body)
	}

	var result SignInResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Admin endpoints require the Service Role Key both as apikey and bearer.
func (s *Client) setAdminHeaders(req *http.Request) {
	req.Header.Set("apikey", s.config.Supabase.ServiceRoleKey)
	req.Header.Set("Authorization", "Bearer "+s.config.Supabase.ServiceRoleKey)
	req.Header.Set("Content-Type", "application/json")
}

func newSupabaseError(statusCode int, body []byte) *SupabaseError {
	msg := string(bytes.TrimSpace(body))

	var errResp map[string]interface{}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if m, ok := errResp["msg"].(string); ok {
			msg = m
		} else if m, ok := errResp["error_description"].(string); ok {
			msg = m
		} else if m, ok := errResp["message"].(string); ok {
			msg = m
		}
	}

	return &SupabaseError{
		StatusCode: statusCode,
		Message:    msg,
	}
}

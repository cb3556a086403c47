package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client wraps the backend-as-a-service auth/profile API. The vendor owns
// the schema; this client only passes credentials through and reads back
// session tokens and profile records.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// User is the subset of the remote user record the storefront reads.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Session pairs an access token with its user.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// Profile is the upsertable profile record.
type Profile struct {
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type apiError struct {
	Message     string `json:"message"`
	Description string `json:"error_description"`
}

func (c *Client) do(ctx context.Context, method, path, bearer string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.APIKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("account API: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var apiErr apiError
		if json.NewDecoder(res.Body).Decode(&apiErr) == nil {
			msg := apiErr.Message
			if msg == "" {
				msg = apiErr.Description
			}
			if msg != "" {
				return fmt.Errorf("account API: %s", msg)
			}
		}
		return fmt.Errorf("account API: status %d", res.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// SignUp registers a new user. The confirmation flow stays on the vendor side.
func (c *Client) SignUp(ctx context.Context, email, password, fullName string) error {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}
	return c.do(ctx, http.MethodPost, "/auth/v1/signup", "", body, nil)
}

// SignIn exchanges email+password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut revokes the session token.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", token, nil, nil)
}

// Session fetches the user behind a token, or an error when it is stale.
func (c *Client) Session(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetPassword sends the password-recovery email.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/recover", "", map[string]string{"email": email}, nil)
}

// SubscribeNewsletter records an email in the subscriber table.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/rest/v1/newsletter_subscribers", "", body, nil)
}

// UpdateProfile updates auth metadata and upserts the profile row.
func (c *Client) UpdateProfile(ctx context.Context, token string, profile Profile) error {
	body := map[string]interface{}{"data": profile}
	if err := c.do(ctx, http.MethodPut, "/auth/v1/user", token, body, nil); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/rest/v1/user_profiles", token, profile, nil)
}

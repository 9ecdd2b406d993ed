package petpalsdk

import (
	"context"
	"net/http"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account on the user service.
func (c *SDKClient) Register(ctx context.Context, username, password string) (*RegisterResponse, error) {
	body, err := jsonBody(registerRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.Endpoints.Users+"/v1/users/register", body, nil)
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginToken exchanges credentials for a raw token response. Most callers
// want Login, which wraps the token in a Session.
func (c *SDKClient) LoginToken(ctx context.Context, username, password string) (*TokenResponse, error) {
	body, err := jsonBody(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.Endpoints.Users+"/v1/users/login", body, nil)
	if err != nil {
		return nil, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the account behind the session's token. This doubles as a
// token introspection call: an invalid or expired token fails with a 401.
func (s *Session) Me(ctx context.Context) (*UserInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Users+"/v1/users/me", nil)
	if err != nil {
		return nil, err
	}

	var out UserInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns the public view of all accounts (id and username only).
func (s *Session) ListUsers(ctx context.Context) ([]UserInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Users+"/v1/users", nil)
	if err != nil {
		return nil, err
	}

	var out []UserInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

package petpalsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Endpoints holds the base URL of each PetPal service. In a single-host
// deployment they differ only by port.
type Endpoints struct {
	Users          string
	Pets           string
	Appointments   string
	Notifications  string
	MedicalRecords string
}

func trimBase(s string) string { return strings.TrimSuffix(s, "/") }

// SDKClient is a client for the PetPal services. It provides the
// unauthenticated operations (register, login, health) and creates
// authenticated Sessions.
type SDKClient struct {
	Endpoints  Endpoints
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the given service endpoints.
func NewSDKClient(eps Endpoints) *SDKClient {
	return &SDKClient{
		Endpoints: Endpoints{
			Users:          trimBase(eps.Users),
			Pets:           trimBase(eps.Pets),
			Appointments:   trimBase(eps.Appointments),
			Notifications:  trimBase(eps.Notifications),
			MedicalRecords: trimBase(eps.MedicalRecords),
		},
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates against the user service and returns a Session
// carrying the issued bearer token.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	tokenResp, err := c.LoginToken(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp), nil
}

// NewSessionFromToken creates a Session from a previously issued token.
// Useful when the token was stored between program runs; the session still
// refuses to use it past expiresIn seconds from now.
func (c *SDKClient) NewSessionFromToken(token string, expiresIn int) *Session {
	return newSession(c, &TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	})
}

// GetLiveness checks the /livez endpoint of the given service base URL.
func (c *SDKClient) GetLiveness(ctx context.Context, baseURL string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, trimBase(baseURL)+"/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks the /readyz endpoint of the given service base URL.
func (c *SDKClient) GetReadiness(ctx context.Context, baseURL string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, trimBase(baseURL)+"/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

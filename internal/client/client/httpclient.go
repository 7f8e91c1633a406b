package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/authboot/internal/netx"
)

// RegisterPath is appended to the base URL for registration requests.
const RegisterPath = "auth/register"

type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient returns a client for the auth API rooted at baseURL.
// A nil hc means http.DefaultClient; no timeout is added on top of it.
func NewHTTPClient(baseURL string, hc *http.Client) (*HTTPClient, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: baseURL, hc: hc}, nil
}

// Register posts user as JSON to the registration endpoint and returns the
// parsed response payload unchanged.
//
// The body is parsed before the status is looked at. A non-2xx status yields
// a *RegistrationError (matching ErrRegistration) whatever the body says.
func (c *HTTPClient) Register(ctx context.Context, user any) (json.RawMessage, error) {
	endpoint, err := url.JoinPath(c.baseURL, RegisterPath)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}

	body, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	status, payload, err := netx.PostJSON(ctx, c.hc, endpoint, body)
	switch {
	case err == nil:
	case errors.Is(err, netx.ErrNotJSON):
		if !netx.IsSuccess(status) {
			return nil, &RegistrationError{Status: status}
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	case status == 0:
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	case !netx.IsSuccess(status):
		return nil, &RegistrationError{Status: status}
	default:
		return nil, err
	}

	if !netx.IsSuccess(status) {
		return nil, &RegistrationError{Status: status, Detail: payload}
	}
	return payload, nil
}

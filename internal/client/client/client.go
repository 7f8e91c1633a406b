package client

import (
	"context"
	"encoding/json"
)

// Client is the remote auth API as seen by the rest of the client.
type Client interface {
	Register(ctx context.Context, user any) (json.RawMessage, error)
}

// RegisterRequest is the canonical registration payload. Any other
// JSON-serializable value can be passed to Register instead; it is sent as is.
type RegisterRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

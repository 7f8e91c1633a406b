// Package netx holds small HTTP helpers shared by client components.
package netx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrNotJSON is returned by PostJSON when the response body could not be
	// parsed as JSON. The response status is still reported.
	ErrNotJSON = errors.New("response body is not valid JSON")

	// ErrReadBody is returned when the response body could not be read in
	// full. The response status is still reported.
	ErrReadBody = errors.New("read body")
)

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// PostJSON sends body to url as application/json using hc and parses the
// response body as JSON whatever the status code is.
//
// The returned status is only meaningful when err is nil or wraps ErrNotJSON
// or ErrReadBody.
// Transport errors (dial, TLS, cancelled ctx) are returned unwrapped with a
// zero status.
func PostJSON(ctx context.Context, hc *http.Client, url string, body []byte) (int, json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	if hc == nil {
		hc = http.DefaultClient
	}

	resp, err := hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: %w", ErrReadBody, err)
	}

	var payload json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: %s", ErrNotJSON, err.Error())
	}

	return resp.StatusCode, payload, nil
}

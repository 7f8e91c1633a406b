// Package client contains client-side building blocks for authboot.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk to
//     the remote auth service.
//  2. A concrete HTTP implementation (see HTTPClient) whose Register posts the
//     user payload as JSON to {BaseURL}auth/register, parses the response body
//     as JSON regardless of status, and only then decides between success and
//     failure.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) that
//     open the SQLite store and apply embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrRegistration, ErrUnavailable, ErrMalformedResponse.
//
// A failed registration returns *RegistrationError. Its message is always
// "registration failed"; the HTTP status and the parsed failure body are
// available on the value via errors.As but are never part of the message.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Register performs exactly one request
// and never retries; it sets no timeout of its own, so cancellation is up to
// the caller's context.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - DB helpers: InitDatabase, RunMigrations
//   - Errors:     ErrRegistration, ErrUnavailable, ErrMalformedResponse
package client

// Package services contains application services for the authboot client.
// This file defines the authentication service: input validation, remote
// registration, token persistence and the page heading that reflects the
// outcome.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/dmitrijs2005/authboot/internal/client/client"
	"github.com/dmitrijs2005/authboot/internal/client/tokenstore"
	"github.com/dmitrijs2005/authboot/internal/logging"
	"github.com/dmitrijs2005/authboot/internal/validation"
)

// FallbackTokenPath is tried when the configured token path finds nothing.
// The v2 API nests payloads under "data".
const FallbackTokenPath = "data.accessToken"

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: validate input; when valid, register remotely, store the issued
//     token and update the page heading.
//   - Token: the stored token, if any.
//   - Claims: the stored token's JWT claims, unverified.
//   - SetHeading: rewrite the page heading.
//   - Logout: wipe the local store.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (Outcome, error)
	Token(ctx context.Context) (string, bool, error)
	Claims(ctx context.Context) (jwt.MapClaims, error)
	SetHeading(text string)
	Logout(ctx context.Context) error
}

// HeadingUpdater is the part of page.HeadingUpdater the service needs.
type HeadingUpdater interface {
	UpdateMainHeading(text string)
}

// RegisterInput is what the user typed. Name is optional.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Outcome reports what Register did.
//
// When Validation is not valid nothing else happened and the error is nil.
type Outcome struct {
	Validation validation.Result
	Payload    json.RawMessage
	TokenSaved bool
	Heading    string
}

// AuthDeps groups the collaborators of the auth service. Heading and Logger
// may be nil; Validator defaults to the noroff.no rules and TokenPath to
// "accessToken".
type AuthDeps struct {
	Client    client.Client
	Tokens    *tokenstore.Store
	Validator *validation.Validator
	Heading   HeadingUpdater
	TokenPath string
	Logger    logging.Logger
}

type authService struct {
	client    client.Client
	tokens    *tokenstore.Store
	validator *validation.Validator
	heading   HeadingUpdater
	tokenPath string
	log       logging.Logger
}

// NewAuthService constructs an AuthService from d.
func NewAuthService(d AuthDeps) AuthService {
	s := &authService{
		client:    d.Client,
		tokens:    d.Tokens,
		validator: d.Validator,
		heading:   d.Heading,
		tokenPath: d.TokenPath,
		log:       d.Logger,
	}
	if s.validator == nil {
		s.validator = validation.New(validation.DefaultDomain, validation.DefaultMessages)
	}
	if s.tokenPath == "" {
		s.tokenPath = "accessToken"
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	return s
}

// Register validates in and, when it passes, registers the user remotely.
//
// A validation failure is reported in Outcome.Validation with a nil error and
// no network call. A remote failure is returned as is (see client.ErrRegistration).
// On success the token found in the response, if any, is saved and the
// heading is set to a welcome line.
func (a *authService) Register(ctx context.Context, in RegisterInput) (Outcome, error) {
	log := a.log.With("request_id", uuid.NewString())

	out := Outcome{Validation: a.validator.ValidateForm(in.Email, in.Password)}
	if !out.Validation.IsValid() {
		log.Info(ctx, "registration input rejected", "fields", out.Validation.Fields())
		return out, nil
	}

	req := client.RegisterRequest{Name: in.Name, Email: in.Email, Password: in.Password}
	payload, err := a.client.Register(ctx, req)
	if err != nil {
		log.Warn(ctx, "registration failed", "error", err)
		return out, err
	}
	out.Payload = payload

	if token, ok := extractToken(payload, a.tokenPath); ok {
		if err := a.tokens.SaveToken(ctx, token); err != nil {
			return out, fmt.Errorf("save token: %w", err)
		}
		out.TokenSaved = true
	} else {
		log.Debug(ctx, "no token in registration response", "path", a.tokenPath)
	}

	out.Heading = welcome(in)
	a.SetHeading(out.Heading)

	log.Info(ctx, "registration succeeded", "token_saved", out.TokenSaved)
	return out, nil
}

func (a *authService) Token(ctx context.Context) (string, bool, error) {
	return a.tokens.GetToken(ctx)
}

func (a *authService) Claims(ctx context.Context) (jwt.MapClaims, error) {
	return a.tokens.Claims(ctx)
}

func (a *authService) SetHeading(text string) {
	if a.heading == nil {
		return
	}
	a.heading.UpdateMainHeading(text)
}

// Logout wipes the whole local store, the token included.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.tokens.ClearStorage(ctx); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}
	return nil
}

// extractToken looks the token up at path, then at FallbackTokenPath. Only
// non-empty strings count.
func extractToken(payload json.RawMessage, path string) (string, bool) {
	for _, p := range []string{path, FallbackTokenPath} {
		r := gjson.GetBytes(payload, p)
		if r.Type == gjson.String && r.Str != "" {
			return r.Str, true
		}
	}
	return "", false
}

func welcome(in RegisterInput) string {
	who := in.Name
	if who == "" {
		who = in.Email
	}
	return "Welcome, " + who
}

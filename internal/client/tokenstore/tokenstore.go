// Package tokenstore keeps the credential token issued by the auth service in
// a key-value store.
//
// Values are JSON-encoded before they are written, so the store holds the same
// representation a browser's localStorage would. The token lives under a single
// fixed key (TokenKey). ClearStorage is deliberately broad: it wipes the whole
// underlying store, not just that key.
package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authboot/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authboot/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKey is the store key the token is saved under.
const TokenKey = common.TokenStorageKey

var (
	ErrNoToken  = errors.New("no token stored")
	ErrNotJWT   = errors.New("stored token is not a JWT")
	ErrNotToken = errors.New("stored value is not a string token")
)

type Store struct {
	repo metadata.Repository
}

func New(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Save JSON-encodes v and writes it under TokenKey, replacing any prior value.
func (s *Store) Save(ctx context.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	return s.repo.Set(ctx, TokenKey, data)
}

// Load decodes the stored value into v. It reports false, with a nil error,
// when nothing is stored.
func (s *Store) Load(ctx context.Context, v any) (bool, error) {
	data, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode token: %w", err)
	}
	return true, nil
}

// SaveToken persists token.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.Save(ctx, token)
}

// GetToken returns the stored token. A missing token is ("", false, nil).
func (s *Store) GetToken(ctx context.Context) (string, bool, error) {
	var raw json.RawMessage
	ok, err := s.Load(ctx, &raw)
	if err != nil || !ok {
		return "", false, err
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return "", false, ErrNotToken
	}
	return token, true, nil
}

// ClearStorage removes every entry of the underlying store.
func (s *Store) ClearStorage(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// Claims decodes the stored token as a JWT without verifying its signature.
// The result is informational only and must not be used for trust decisions.
func (s *Store) Claims(ctx context.Context) (jwt.MapClaims, error) {
	token, ok, err := s.GetToken(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}
	return claims, nil
}

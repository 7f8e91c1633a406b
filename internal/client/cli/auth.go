package cli

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/dmitrijs2005/authboot/internal/client/client"
	"github.com/dmitrijs2005/authboot/internal/client/services"
	"github.com/dmitrijs2005/authboot/internal/client/tokenstore"
	"github.com/dmitrijs2005/authboot/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, an email and a password and submits them.
//
// Validation problems are printed one per line and are not an error. On
// success it prints "Success!" and saves the page if its heading changed.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name (optional)", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	out, err := a.authService.Register(ctx, services.RegisterInput{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		var regErr *client.RegistrationError
		switch {
		case errors.As(err, &regErr):
			a.printf("Registration failed (status %d)\n", regErr.Status)
		case errors.Is(err, client.ErrUnavailable):
			a.printf("Server unavailable, try again later\n")
		default:
			a.printf("Registration failed: %s\n", err.Error())
		}
		return err
	}

	if !out.Validation.IsValid() {
		for _, f := range out.Validation.Fields() {
			a.printf("%s: %s\n", f, out.Validation.Errors[f])
		}
		return nil
	}

	a.printf("Success!\n")
	if !out.TokenSaved {
		a.printf("No access token was issued\n")
	}
	if out.Heading != "" {
		a.savePage(ctx)
	}
	return nil
}

// ShowToken prints the stored access token.
func (a *App) ShowToken(ctx context.Context) error {
	token, ok, err := a.authService.Token(ctx)
	if err != nil {
		a.printf("Error reading token: %s\n", err.Error())
		return err
	}
	if !ok {
		a.printf("No token stored\n")
		return nil
	}
	a.printf("%s\n", token)
	return nil
}

// WhoAmI prints the claims of the stored token, sorted by name.
// The signature is not verified.
func (a *App) WhoAmI(ctx context.Context) error {
	claims, err := a.authService.Claims(ctx)
	switch {
	case errors.Is(err, tokenstore.ErrNoToken):
		a.printf("No token stored\n")
		return nil
	case errors.Is(err, tokenstore.ErrNotJWT):
		a.printf("Stored token is not a JWT\n")
		return nil
	case err != nil:
		a.printf("Error reading claims: %s\n", err.Error())
		return err
	}

	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.printf("%s: %v\n", k, claims[k])
	}
	return nil
}

// Heading rewrites the page heading with text and saves the page.
func (a *App) Heading(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		a.printf("Usage: heading <text>\n")
		return nil
	}
	if a.page == nil {
		a.printf("No page loaded\n")
		return nil
	}
	a.authService.SetHeading(text)
	a.savePage(ctx)
	return nil
}

// Logout wipes local storage, the token included.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.printf("Logout failed: %s\n", err.Error())
		return err
	}
	a.printf("Logged out\n")
	return nil
}

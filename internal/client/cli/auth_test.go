package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/authboot/internal/client/client"
	"github.com/dmitrijs2005/authboot/internal/client/config"
	"github.com/dmitrijs2005/authboot/internal/client/page"
	"github.com/dmitrijs2005/authboot/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authboot/internal/client/services"
	"github.com/dmitrijs2005/authboot/internal/client/tokenstore"
	"github.com/dmitrijs2005/authboot/internal/logging"
	"github.com/dmitrijs2005/authboot/internal/validation"
)

func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	// Register
	regIn  services.RegisterInput
	regOut services.Outcome
	regErr error

	// Token / Claims
	token    string
	hasToken bool
	tokenErr error
	claims   jwt.MapClaims
	claimErr error

	headings []string

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) Register(_ context.Context, in services.RegisterInput) (services.Outcome, error) {
	f.regIn = in
	return f.regOut, f.regErr
}
func (f *fakeAuth) Token(context.Context) (string, bool, error) {
	return f.token, f.hasToken, f.tokenErr
}
func (f *fakeAuth) Claims(context.Context) (jwt.MapClaims, error) { return f.claims, f.claimErr }
func (f *fakeAuth) SetHeading(text string)                        { f.headings = append(f.headings, text) }
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func newTestApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		config:      &config.Config{},
		authService: f,
		log:         logging.Discard(),
		out:         &out,
	}, &out
}

func validOutcome() services.Outcome {
	return services.Outcome{
		Validation: validation.ValidateForm("alice@stud.noroff.no", "exactly8"),
		TokenSaved: true,
		Heading:    "Welcome, alice",
	}
}

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{regOut: validOutcome()}
	a, out := newTestApp(f)

	pw := []byte("exactly8")
	stubInputs(t, []string{"alice", "alice@stud.noroff.no"}, pw)

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	want := services.RegisterInput{Name: "alice", Email: "alice@stud.noroff.no", Password: "exactly8"}
	if f.regIn != want {
		t.Fatalf("input mismatch: got %+v, want %+v", f.regIn, want)
	}
	if !strings.Contains(out.String(), "Success!") {
		t.Fatalf("expected Success!, got %q", out.String())
	}
	if !bytes.Equal(pw, make([]byte, len(pw))) {
		t.Fatalf("password not wiped: %v", pw)
	}
}

func TestRegister_EmailReachesServiceUntrimmed(t *testing.T) {
	f := &fakeAuth{regOut: validOutcome()}
	a, _ := newTestApp(f)
	a.reader = bufio.NewReader(strings.NewReader("alice\n alice@stud.noroff.no \nexactly8\n"))
	stubTerminal(t, false, nil, nil)

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regIn.Email != " alice@stud.noroff.no " {
		t.Fatalf("email = %q, want it exactly as typed", f.regIn.Email)
	}
	if f.regIn.Password != "exactly8" {
		t.Fatalf("password = %q", f.regIn.Password)
	}
}

type countingClient struct{ calls int }

func (c *countingClient) Register(context.Context, any) (json.RawMessage, error) {
	c.calls++
	return json.RawMessage(`{"accessToken":"t"}`), nil
}

func TestRegister_SurroundingSpacesFailValidation(t *testing.T) {
	cc := &countingClient{}
	a, out := newTestApp(&fakeAuth{})
	a.authService = services.NewAuthService(services.AuthDeps{
		Client: cc,
		Tokens: tokenstore.New(metadata.NewMemoryRepository()),
	})
	a.reader = bufio.NewReader(strings.NewReader("\nalice@stud.noroff.no \nexactly8\n"))
	stubTerminal(t, false, nil, nil)

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if cc.calls != 0 {
		t.Fatalf("no request expected for an invalid email, got %d", cc.calls)
	}
	if !strings.Contains(out.String(), validation.FieldEmail+": "+validation.DefaultMessages.Email) {
		t.Fatalf("expected email error, got %q", out.String())
	}
}

func TestRegister_NoTokenIssued(t *testing.T) {
	o := validOutcome()
	o.TokenSaved = false
	a, out := newTestApp(&fakeAuth{regOut: o})
	stubInputs(t, []string{"", "alice@stud.noroff.no"}, []byte("exactly8"))

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if !strings.Contains(out.String(), "No access token was issued") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRegister_ValidationErrorsPrintedInOrder(t *testing.T) {
	f := &fakeAuth{regOut: services.Outcome{Validation: validation.ValidateForm("bad", "short")}}
	a, out := newTestApp(f)
	stubInputs(t, []string{"", "bad"}, []byte("short"))

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("validation failure must not be an error, got %v", err)
	}
	got := out.String()
	ie := strings.Index(got, validation.FieldEmail+": "+validation.DefaultMessages.Email)
	ip := strings.Index(got, validation.FieldPassword+": "+validation.DefaultMessages.Password)
	if ie < 0 || ip < 0 || ie > ip {
		t.Fatalf("expected email then password messages, got %q", got)
	}
	if strings.Contains(got, "Success!") {
		t.Fatalf("unexpected Success! in %q", got)
	}
}

func TestRegister_RemoteFailure(t *testing.T) {
	f := &fakeAuth{regErr: &client.RegistrationError{Status: 409, Detail: []byte(`{"errors":[{"message":"Profile already exists"}]}`)}}
	a, out := newTestApp(f)
	stubInputs(t, []string{"", "alice@stud.noroff.no"}, []byte("exactly8"))

	err := a.Register(context.Background())
	if !errors.Is(err, client.ErrRegistration) {
		t.Fatalf("expected ErrRegistration, got %v", err)
	}
	if !strings.Contains(out.String(), "status 409") {
		t.Fatalf("expected status in output, got %q", out.String())
	}
	if strings.Contains(out.String(), "Profile already exists") {
		t.Fatalf("server detail must not be printed: %q", out.String())
	}
}

func TestRegister_Unavailable(t *testing.T) {
	f := &fakeAuth{regErr: client.ErrUnavailable}
	a, out := newTestApp(f)
	stubInputs(t, []string{"", "alice@stud.noroff.no"}, []byte("exactly8"))

	if err := a.Register(context.Background()); !errors.Is(err, client.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if !strings.Contains(out.String(), "Server unavailable") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRegister_PromptErrorStopsEarly(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(f)
	stubInputs(t, nil, nil)

	if err := a.Register(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if f.regIn != (services.RegisterInput{}) {
		t.Fatalf("service must not be called, got %+v", f.regIn)
	}
}

func TestRegister_SavesPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte(`<html><body><h1>Register</h1></body></html>`), 0o600); err != nil {
		t.Fatal(err)
	}
	doc, err := page.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	f := &fakeAuth{regOut: validOutcome()}
	a, _ := newTestApp(f)
	a.page = doc
	a.config.PagePath = path
	page.NewHeadingUpdater(doc, "h1").UpdateMainHeading("Welcome, alice")
	stubInputs(t, []string{"alice", "alice@stud.noroff.no"}, []byte("exactly8"))

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "<h1>Welcome, alice</h1>") {
		t.Fatalf("page not saved: %s", b)
	}
}

func TestShowToken(t *testing.T) {
	tests := []struct {
		name    string
		f       *fakeAuth
		want    string
		wantErr bool
	}{
		{"stored", &fakeAuth{token: "tok", hasToken: true}, "tok\n", false},
		{"absent", &fakeAuth{}, "No token stored\n", false},
		{"error", &fakeAuth{tokenErr: errors.New("disk")}, "Error reading token: disk\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := newTestApp(tt.f)
			err := a.ShowToken(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if out.String() != tt.want {
				t.Fatalf("got %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestWhoAmI(t *testing.T) {
	a, out := newTestApp(&fakeAuth{claims: jwt.MapClaims{"name": "alice", "email": "alice@stud.noroff.no"}})
	if err := a.WhoAmI(context.Background()); err != nil {
		t.Fatalf("WhoAmI err: %v", err)
	}
	want := "email: alice@stud.noroff.no\nname: alice\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestWhoAmI_NoTokenAndNotJWT(t *testing.T) {
	for err, want := range map[error]string{
		tokenstore.ErrNoToken: "No token stored\n",
		tokenstore.ErrNotJWT:  "Stored token is not a JWT\n",
	} {
		a, out := newTestApp(&fakeAuth{claimErr: err})
		if got := a.WhoAmI(context.Background()); got != nil {
			t.Fatalf("expected nil error, got %v", got)
		}
		if out.String() != want {
			t.Fatalf("got %q, want %q", out.String(), want)
		}
	}
}

func TestHeading(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f)

	_ = a.Heading(context.Background(), "  ")
	if !strings.Contains(out.String(), "Usage: heading <text>") {
		t.Fatalf("expected usage, got %q", out.String())
	}

	out.Reset()
	_ = a.Heading(context.Background(), "Hi")
	if !strings.Contains(out.String(), "No page loaded") || len(f.headings) != 0 {
		t.Fatalf("expected no-op without page, got %q %v", out.String(), f.headings)
	}

	doc, err := page.ParseString(`<h1>x</h1>`)
	if err != nil {
		t.Fatal(err)
	}
	a.page = doc
	a.config.PagePath = filepath.Join(t.TempDir(), "index.html")
	if err := a.Heading(context.Background(), " Hi there "); err != nil {
		t.Fatalf("Heading err: %v", err)
	}
	if len(f.headings) != 1 || f.headings[0] != "Hi there" {
		t.Fatalf("unexpected headings %v", f.headings)
	}
	if _, err := os.Stat(a.config.PagePath); err != nil {
		t.Fatalf("page not saved: %v", err)
	}
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f)
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled || out.String() != "Logged out\n" {
		t.Fatalf("unexpected state: called=%v out=%q", f.logoutCalled, out.String())
	}
}

func TestLogout_Error(t *testing.T) {
	f := &fakeAuth{logoutErr: errors.New("locked")}
	a, out := newTestApp(f)
	if err := a.Logout(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(out.String(), "Logout failed: locked") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

package validation

import (
	"regexp"
	"unicode/utf8"
)

// Field names used as keys in Result.Errors.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// DefaultDomain is the organizational email domain accepted by the default
// validator. Addresses on stud.<DefaultDomain> are accepted as well.
const DefaultDomain = "noroff.no"

// MinPasswordLength is the minimal accepted password length in characters.
const MinPasswordLength = 8

// Messages holds the user-facing text reported for each failed field.
type Messages struct {
	Email    string
	Password string
}

// DefaultMessages are the messages used by the package-level functions.
var DefaultMessages = Messages{
	Email:    "Please enter a valid stud.noroff.no or noroff.no email address",
	Password: "Password must be at least 8 characters long",
}

// Result is the outcome of a form-level validation.
//
// A Result is valid exactly when Errors is empty; there is no separate flag
// to keep in sync.
type Result struct {
	Errors map[string]string
	order  []string
}

// IsValid reports whether no field failed validation.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Fields returns the names of the failed fields in the order they were
// checked (email first, then password).
func (r Result) Fields() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Result) add(field, msg string) {
	if r.Errors == nil {
		r.Errors = make(map[string]string, 2)
	}
	r.Errors[field] = msg
	r.order = append(r.order, field)
}

// whitespace is the character class body for every Unicode space separator
// plus the ASCII controls \t \n \v \f \r and the BOM. RE2's \s only covers
// the ASCII ones.
const whitespace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// Validator applies the email and password rules for a single domain.
// It is immutable and safe for concurrent use.
type Validator struct {
	domain   string
	emailRe  *regexp.Regexp
	messages Messages
}

// New builds a Validator accepting addresses on domain and stud.<domain>.
// An empty domain falls back to DefaultDomain; empty messages fall back to
// the corresponding DefaultMessages entry.
func New(domain string, msgs Messages) *Validator {
	if domain == "" {
		domain = DefaultDomain
	}
	if msgs.Email == "" {
		msgs.Email = DefaultMessages.Email
	}
	if msgs.Password == "" {
		msgs.Password = DefaultMessages.Password
	}

	d := regexp.QuoteMeta(domain)
	re := regexp.MustCompile(`^[^` + whitespace + `@]+@(stud\.` + d + `|` + d + `)$`)

	return &Validator{domain: domain, emailRe: re, messages: msgs}
}

// Domain returns the organizational domain the validator accepts.
func (v *Validator) Domain() string {
	return v.domain
}

// ValidateEmail reports whether email is an address on the validator's
// domain or its stud. subdomain.
func (v *Validator) ValidateEmail(email string) bool {
	return v.emailRe.MatchString(email)
}

// ValidatePassword reports whether password is at least MinPasswordLength
// characters long.
func (v *Validator) ValidatePassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// ValidateForm runs both checks and collects a message for every failure.
// Both checks always run.
func (v *Validator) ValidateForm(email, password string) Result {
	var r Result
	if !v.ValidateEmail(email) {
		r.add(FieldEmail, v.messages.Email)
	}
	if !v.ValidatePassword(password) {
		r.add(FieldPassword, v.messages.Password)
	}
	return r
}

var defaultValidator = New(DefaultDomain, DefaultMessages)

// ValidateEmail checks email against the default domain.
func ValidateEmail(email string) bool {
	return defaultValidator.ValidateEmail(email)
}

// ValidatePassword checks the password length rule.
func ValidatePassword(password string) bool {
	return defaultValidator.ValidatePassword(password)
}

// ValidateForm validates both fields with the default validator.
func ValidateForm(email, password string) Result {
	return defaultValidator.ValidateForm(email, password)
}

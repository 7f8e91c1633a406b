// Package validation checks registration input before it leaves the client.
//
// Rules
//
//   - Email must look like <local>@stud.<domain> or <local>@<domain>, where
//     <local> has no whitespace and no '@'. The default domain is noroff.no.
//   - Password must be at least 8 characters long (counted in Unicode code
//     points). No character-class requirements are enforced.
//
// Input is checked as given: no trimming or case folding happens here.
//
// Validation failures are data, not errors: ValidateForm returns a Result whose
// Errors map carries one user-facing message per failed field, and IsValid
// reports whether that map is empty.
//
// Primary API
//
//   - func ValidateEmail(email string) bool
//   - func ValidatePassword(password string) bool
//   - func ValidateForm(email, password string) Result
//   - func New(domain string, msgs Messages) *Validator - custom domain/messages
package validation

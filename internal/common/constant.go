// Package common contains constants and small helpers shared across authboot
// components.
package common

// TokenStorageKey is the key the credential token is stored under.
const TokenStorageKey = "token"

// DefaultHeadingSelector selects the page's main heading.
const DefaultHeadingSelector = "h1"

// Package cli provides the interactive authboot command-line client.
//
// It wires configuration, the local key-value store, the registration API
// client, the HTML page and an interactive REPL. Typical flow: register with
// an organizational email, inspect the stored token, log out.
//
// Key features:
//   - Register with client-side validation before any request is made
//   - Show the stored access token and its claims
//   - Rewrite the page's main heading
//   - Logout, which wipes local storage
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

// Package page updates the visible state of the client's HTML page.
//
// HeadingUpdater depends only on the Document capability ("find the first
// element matching a selector") and the Element capability ("set its text"),
// so tests can hand it a fake. HTMLDocument is the real implementation: an
// in-memory tree parsed with golang.org/x/net/html and queried with CSS
// selectors compiled by cascadia.
//
// A missing heading is not an error; UpdateMainHeading simply does nothing.
package page

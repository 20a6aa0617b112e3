// Package tui implements a terminal driving adapter for building guest
// passes. It edits the same form state as the web page and renders the QR
// code with block characters.
package tui

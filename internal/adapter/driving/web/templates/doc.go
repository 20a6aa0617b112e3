// Package templates holds the templ components shared by all pages.
//
// Components are written in .templ files; run `go tool templ generate` after
// editing them and commit the generated _templ.go files.
package templates

package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet and form script).
//
//go:embed static/*
var StaticFS embed.FS

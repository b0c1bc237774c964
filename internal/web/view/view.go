// Package view holds the templ components for the web surface. The
// *_templ.go files are generated from the .templ sources.
package view

//go:generate templ generate

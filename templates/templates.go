// Package templates embeds the portal's page and fragment templates so the
// binary serves them regardless of working directory.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded template.
func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}

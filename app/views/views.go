// Package views holds the HTML templates for the post card pages.
package views

import (
	"embed"
	"html/template"

	"postcard/app/locale"
)

//go:embed templates/*.html
var files embed.FS

// Template names executed by controllers.
const (
	Layout      = "layout"
	CommentForm = "comment-form"
)

// Load parses every template with labels from loc.
func Load(loc *locale.Locale) (*template.Template, error) {
	return template.New("views").
		Funcs(template.FuncMap{"label": loc.Label}).
		ParseFS(files, "templates/*.html")
}

// Package views embeds the HTML templates and static assets of the site.
package views

import (
	"embed"
	"html/template"
	"io/fs"
)

// Template names. Each page template is named after its file.
const (
	HomeIndex       = "home_index.tmpl"
	HomePrivacy     = "home_privacy.tmpl"
	CustomerIndex   = "customer_index.tmpl"
	CustomerDetails = "customer_details.tmpl"
	CustomerCreate  = "customer_create.tmpl"
	CustomerEdit    = "customer_edit.tmpl"
	CustomerDelete  = "customer_delete.tmpl"
	Notification    = "notification.tmpl"
	Error           = "error.tmpl"
)

//go:embed templates/*.tmpl
var templates embed.FS

//go:embed static
var static embed.FS

// Load parses every template into one set.
func Load() (*template.Template, error) {
	return template.New("").ParseFS(templates, "templates/*.tmpl")
}

// Static returns the static asset tree rooted at its top directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse returns the parsed template set for the web surface. Templates are
// embedded so the binary (and the handler tests) work from any directory.
func Parse() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}

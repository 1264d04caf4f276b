package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every page. Templates are addressed by file name, e.g.
// "index.html".
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.html")
}

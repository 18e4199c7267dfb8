package views

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Templates parses every page template shipped with the binary.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.tmpl"))
}

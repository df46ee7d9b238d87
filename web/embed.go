// Package web carries the embedded single-page UI.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

var index = template.Must(template.ParseFS(assets, "templates/*.tmpl"))

// Static serves the embedded assets under a /static/ prefix.
func Static() http.Handler {
	sub, _ := fs.Sub(assets, "static")
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// RenderIndex writes the board page.
func RenderIndex(w io.Writer) error {
	return index.ExecuteTemplate(w, "index.tmpl", nil)
}

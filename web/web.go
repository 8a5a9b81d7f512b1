// Package web holds the embedded page templates and browser assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static is rooted at the static directory, so "dashboard.js" resolves directly.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Templates parses every page against layout.html, keyed by file name without extension.
func Templates() (map[string]*template.Template, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	templates := map[string]*template.Template{}
	for _, page := range pages {
		if path.Base(page) == "layout.html" {
			continue
		}
		t, err := template.ParseFS(templateFS, "templates/layout.html", page)
		if err != nil {
			return nil, err
		}
		templates[strings.TrimSuffix(path.Base(page), ".html")] = t
	}
	return templates, nil
}

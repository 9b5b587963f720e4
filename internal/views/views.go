// Package views holds the HTML templates and static assets served by the app.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
)

// Template names rendered by the handlers.
const (
	Home      = "home"
	GameIndex = "games/index"
	GameAdd   = "games/add"
	GameShow  = "games/show"
	GameEdit  = "games/edit"
	NotFound  = "errors/404"
	ServerErr = "errors/500"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"join":  strings.Join,
	"count": count,
}

// count renders a player count or play time, preferring the text that was
// typed when it was not a whole number.
func count(n int, text string) string {
	if text != "" {
		return text
	}
	return strconv.Itoa(n)
}

// Templates parses every embedded template. Each file defines its templates
// by name with {{define}}.
func Templates() (*template.Template, error) {
	return template.New("views").Funcs(funcs).ParseFS(templateFS,
		"templates/*.tmpl",
		"templates/games/*.tmpl",
		"templates/errors/*.tmpl",
	)
}

// Static returns the stylesheet and other public assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Package web serves the embedded browser front-end.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler returns a file server for the embedded static assets.
// The landing page is static/index.html, served at /.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Unreachable with a correct embed directive.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

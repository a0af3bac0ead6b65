// Package web serves the page markup the upload controller binds to.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var index []byte

// Index writes the converter page.
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(index)
}

// Static serves the compiled wasm controller and its loader from dir.
func Static(dir string) http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
}

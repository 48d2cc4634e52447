// Package assets serves the embedded stylesheet.
package assets

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	module "github.com/louisbranch/onboard/internal/services/web/module"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
	"github.com/louisbranch/onboard/internal/services/web/static"
)

const cacheControl = "public, max-age=3600"

// Module serves files from an fs.FS under the static prefix.
type Module struct {
	files fs.FS
}

// New returns the module backed by the embedded static files.
func New() Module {
	return NewWithFS(static.FS)
}

// NewWithFS returns the module backed by files.
func NewWithFS(files fs.FS) Module {
	return Module{files: files}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "assets"
}

// Mount wires the file server under the static prefix.
func (m Module) Mount() (module.Mount, error) {
	if m.files == nil {
		return module.Mount{}, fmt.Errorf("assets module has no files")
	}
	fileServer := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(m.files)))
	mux := http.NewServeMux()
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, withStaticHeaders(fileServer))
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
}

// withStaticHeaders sets cache and explicit content-type headers so asset
// types do not depend on the host's mime tables.
func withStaticHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		if strings.HasSuffix(strings.ToLower(r.URL.Path), ".css") {
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		}
		next.ServeHTTP(w, r)
	})
}

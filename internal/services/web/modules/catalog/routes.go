package catalog

import (
	"net/http"

	"github.com/louisbranch/onboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.OptionsPrefix+"{$}", h.handleCategories)
	mux.HandleFunc(http.MethodGet+" "+routepath.OptionsPattern, h.handleOptions)
}

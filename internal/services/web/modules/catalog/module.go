// Package catalog exposes the onboarding option lists as JSON.
package catalog

import (
	"net/http"

	"github.com/louisbranch/onboard/internal/platform/options"
	module "github.com/louisbranch/onboard/internal/services/web/module"
	"github.com/louisbranch/onboard/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
)

// Module serves the option catalog API.
type Module struct {
	catalog *options.Catalog
	policy  requestmeta.SchemePolicy
}

// New returns a catalog module over c. A nil catalog serves the embedded one.
func New(c *options.Catalog, policy requestmeta.SchemePolicy) Module {
	if c == nil {
		c = options.Default()
	}
	return Module{catalog: c, policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "catalog"
}

// Mount wires the catalog routes under the options API prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{Base: modulehandler.NewBase(m.policy), catalog: m.catalog})
	return module.Mount{Prefix: routepath.OptionsPrefix, Handler: mux}, nil
}

// Package public serves the landing page and the site-wide not-found page.
package public

import (
	"net/http"

	module "github.com/louisbranch/onboard/internal/services/web/module"
	"github.com/louisbranch/onboard/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
)

// Module provides unauthenticated root routes.
type Module struct {
	policy requestmeta.SchemePolicy
}

// New returns the public module.
func New() Module {
	return NewWithPolicy(requestmeta.SchemePolicy{})
}

// NewWithPolicy returns the public module with an explicit request scheme policy.
func NewWithPolicy(policy requestmeta.SchemePolicy) Module {
	return Module{policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "public"
}

// Mount wires the landing routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{Base: modulehandler.NewBase(m.policy)})
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

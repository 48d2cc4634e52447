package modules

import (
	"fmt"

	"github.com/louisbranch/onboard/internal/platform/options"
	"github.com/louisbranch/onboard/internal/services/web/modules/assets"
	"github.com/louisbranch/onboard/internal/services/web/modules/catalog"
	"github.com/louisbranch/onboard/internal/services/web/modules/onboarding"
	"github.com/louisbranch/onboard/internal/services/web/modules/public"
)

// Registry holds the built modules. The wizard module is also exposed
// directly so the server can run its session sweeper.
type Registry struct {
	Onboarding onboarding.Module
	modules    []Module
}

// Build constructs the default module set.
func Build(deps Dependencies) (Registry, error) {
	cfg := deps.Onboarding
	if cfg.Catalog == nil {
		cfg.Catalog = options.Default()
	}
	cfg.Policy = deps.Policy
	wizard, err := onboarding.New(cfg)
	if err != nil {
		return Registry{}, fmt.Errorf("build onboarding module: %w", err)
	}
	return Registry{
		Onboarding: wizard,
		modules: []Module{
			public.NewWithPolicy(deps.Policy),
			wizard,
			catalog.New(cfg.Catalog, deps.Policy),
			assets.New(),
		},
	}, nil
}

// Modules returns the modules in mount order.
func (r Registry) Modules() []Module {
	return append([]Module(nil), r.modules...)
}

// Package modules builds the set of web modules served by the onboarding site.
package modules

import (
	module "github.com/louisbranch/onboard/internal/services/web/module"
	"github.com/louisbranch/onboard/internal/services/web/modules/onboarding"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared inputs required to build the module set.
// The option catalog and scheme policy are shared with the wizard so the
// option API and the wizard agree on the same value domains.
type Dependencies struct {
	Onboarding onboarding.Config
	Policy     requestmeta.SchemePolicy
}

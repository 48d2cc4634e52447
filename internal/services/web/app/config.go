package app

import (
	"log"
	"net/http"

	module "github.com/louisbranch/onboard/internal/services/web/module"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
	// Metrics serves the scrape endpoint when set.
	Metrics      http.Handler
	Policy       requestmeta.SchemePolicy
	MaxBodyBytes int64
	Logger       *log.Logger
}

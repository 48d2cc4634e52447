package app

import (
	"net/http"

	"github.com/louisbranch/onboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/onboard/internal/services/web/platform/observability"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
)

// BuildRootHandler mounts every module plus the health and metrics endpoints
// and wraps the result in the shared middleware chain.
//
// Cross-origin writes are rejected only on module routes; the probe
// endpoints are read-only.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	root, err := Compose(ComposeInput{
		Modules: cfg.Modules,
		Wrap:    requestmeta.GuardUnsafeMethods(cfg.Policy),
	})
	if err != nil {
		return nil, err
	}
	root.Handle(http.MethodGet+" "+routepath.Health, HealthHandler(cfg.Modules))
	if cfg.Metrics != nil {
		root.Handle(http.MethodGet+" "+routepath.Metrics, cfg.Metrics)
	}
	return httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(cfg.Logger),
		httpx.LimitBody(cfg.MaxBodyBytes),
	), nil
}

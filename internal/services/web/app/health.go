package app

import (
	"net/http"

	module "github.com/louisbranch/onboard/internal/services/web/module"
	"github.com/louisbranch/onboard/internal/services/web/platform/httpx"
)

type healthResponse struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

// HealthHandler reports 200 when every module that tracks its own health is
// healthy, and 503 otherwise.
func HealthHandler(modules []module.Module) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := healthResponse{Status: "ok", Modules: map[string]bool{}}
		for _, feature := range modules {
			healthy := true
			if reporter, ok := feature.(module.HealthReporter); ok {
				healthy = reporter.Healthy()
			}
			resp.Modules[feature.ID()] = healthy
			if !healthy {
				resp.Status = "degraded"
			}
		}
		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		_ = httpx.WriteJSON(w, status, resp)
	})
}

// Package onboarding serves the agent and client onboarding wizards.
package onboarding

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/louisbranch/onboard/internal/platform/options"
	module "github.com/louisbranch/onboard/internal/services/web/module"
	"github.com/louisbranch/onboard/internal/services/web/platform/metrics"
	"github.com/louisbranch/onboard/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/onboard/internal/services/web/profile"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
	"github.com/louisbranch/onboard/internal/services/web/session"
)

const (
	defaultSessionTTL = 30 * time.Minute
	defaultMaxMemory  = 8 << 20
)

// Config wires the wizard module.
type Config struct {
	// Gateway persists completed drafts. Without one every submission
	// reports the backend as unavailable.
	Gateway *profile.Gateway
	Catalog *options.Catalog
	// Signer issues session cookies. A random-key signer is built when nil.
	Signer         *session.Signer
	SessionTTL     time.Duration
	MaxUploadBytes int64
	Metrics        metrics.Recorder
	Policy         requestmeta.SchemePolicy
	SessionOptions []session.Option
}

// Module provides the onboarding wizard routes.
type Module struct {
	flows     map[profile.Kind]*flow
	catalog   *options.Catalog
	signer    *session.Signer
	ttl       time.Duration
	maxMemory int64
	metrics   metrics.Recorder
	policy    requestmeta.SchemePolicy
	healthy   bool
}

// New builds the module with one session registry per wizard kind.
func New(cfg Config) (Module, error) {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = options.Default()
	}
	gateway := cfg.Gateway
	healthy := gateway != nil
	if gateway == nil {
		gateway = profile.NewGateway(nil)
	}
	signer := cfg.Signer
	if signer == nil {
		var err error
		signer, err = session.NewSigner(nil, ttl, nil)
		if err != nil {
			return Module{}, fmt.Errorf("onboarding session signer: %w", err)
		}
	}
	maxMemory := cfg.MaxUploadBytes
	if maxMemory <= 0 {
		maxMemory = defaultMaxMemory
	}
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.Nop()
	}
	flows := map[profile.Kind]*flow{
		profile.KindAgent:  agentFlow(catalog, gateway, ttl, cfg.SessionOptions...),
		profile.KindClient: clientFlow(catalog, gateway, ttl, cfg.SessionOptions...),
	}
	for _, kind := range []profile.Kind{profile.KindAgent, profile.KindClient} {
		if _, err := flows[kind].newForm(); err != nil {
			return Module{}, fmt.Errorf("onboarding %s wizard: %w", kind, err)
		}
	}
	return Module{
		flows:     flows,
		catalog:   catalog,
		signer:    signer,
		ttl:       ttl,
		maxMemory: maxMemory,
		metrics:   recorder,
		policy:    cfg.Policy,
		healthy:   healthy,
	}, nil
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "onboarding"
}

// Healthy reports whether a profile backend is configured.
func (m Module) Healthy() bool {
	return m.healthy
}

// Mount wires the wizard routes under the onboarding prefix.
func (m Module) Mount() (module.Mount, error) {
	if len(m.flows) == 0 {
		return module.Mount{}, fmt.Errorf("onboarding module is not configured")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{
		Base:      modulehandler.NewBase(m.policy),
		flows:     m.flows,
		catalog:   m.catalog,
		signer:    m.signer,
		ttl:       m.ttl,
		maxMemory: m.maxMemory,
		metrics:   m.metrics,
	})
	return module.Mount{Prefix: routepath.OnboardingPrefix, Handler: mux}, nil
}

// SweepSessions drops idle sessions and reports the live count per kind.
func (m Module) SweepSessions() int {
	removed := 0
	for kind, f := range m.flows {
		removed += f.sessions.Sweep()
		m.metrics.SetActiveSessions(kind.String(), f.sessions.Len())
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (m Module) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.SweepSessions()
		}
	}
}

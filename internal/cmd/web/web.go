// Package web parses web command configuration and launches the onboarding
// web server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	entrypoint "github.com/louisbranch/onboard/internal/platform/cmd"
	"github.com/louisbranch/onboard/internal/platform/timeouts"
	"github.com/louisbranch/onboard/internal/services/web"
	"github.com/louisbranch/onboard/internal/services/web/integration/cms"
)

// Config holds the web command configuration. Environment names carry the
// ONBOARD_ prefix.
type Config struct {
	HTTPAddr            string        `env:"WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	Backend             string        `env:"WEB_PROFILE_BACKEND" envDefault:"sqlite"`
	DBPath              string        `env:"WEB_DB_PATH" envDefault:"data/onboard.db"`
	CatalogPath         string        `env:"WEB_CATALOG_PATH"`
	SessionSecret       string        `env:"WEB_SESSION_SECRET"`
	SessionTTL          time.Duration `env:"WEB_SESSION_TTL" envDefault:"30m"`
	MaxUploadBytes      int64         `env:"WEB_MAX_UPLOAD_BYTES" envDefault:"8388608"`
	TrustForwardedProto bool          `env:"WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	CMSBaseURL          string        `env:"CMS_BASE_URL"`
	CMSDataset          string        `env:"CMS_DATASET" envDefault:"production"`
	CMSAPIVersion       string        `env:"CMS_API_VERSION" envDefault:"2021-06-07"`
	CMSToken            string        `env:"CMS_TOKEN"`
	CMSTimeout          time.Duration `env:"CMS_TIMEOUT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.CMSTimeout <= 0 {
		cfg.CMSTimeout = timeouts.BackendRequest
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.Backend, "profile-backend", cfg.Backend, "Profile backend: cms, sqlite or none")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite profile database path")
	fs.StringVar(&cfg.CatalogPath, "catalog-path", cfg.CatalogPath, "YAML option catalog replacing the built-in lists")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle lifetime of a wizard draft")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload-bytes", cfg.MaxUploadBytes, "Largest accepted upload in bytes")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a fronting proxy")
	fs.StringVar(&cfg.CMSBaseURL, "cms-base-url", cfg.CMSBaseURL, "CMS API base URL")
	fs.StringVar(&cfg.CMSDataset, "cms-dataset", cfg.CMSDataset, "CMS dataset name")
	fs.StringVar(&cfg.CMSAPIVersion, "cms-api-version", cfg.CMSAPIVersion, "CMS API version")
	fs.DurationVar(&cfg.CMSTimeout, "cms-timeout", cfg.CMSTimeout, "Timeout for one CMS submission")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	options := entrypoint.RunOptions{ShutdownTimeout: timeouts.Shutdown}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, options, func(ctx context.Context) error {
		server, err := web.NewServer(serverConfig(cfg))
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config) web.Config {
	return web.Config{
		HTTPAddr:    cfg.HTTPAddr,
		Backend:     cfg.Backend,
		SQLitePath:  cfg.DBPath,
		CatalogPath: cfg.CatalogPath,
		CMS: cms.Config{
			BaseURL:    cfg.CMSBaseURL,
			Dataset:    cfg.CMSDataset,
			APIVersion: cfg.CMSAPIVersion,
			Token:      cfg.CMSToken,
			HTTPClient: &http.Client{Timeout: cfg.CMSTimeout},
		},
		SessionSecret:       cfg.SessionSecret,
		SessionTTL:          cfg.SessionTTL,
		MaxUploadBytes:      cfg.MaxUploadBytes,
		TrustForwardedProto: cfg.TrustForwardedProto,
		Logger:              log.Default(),
	}
}

package web

import (
	"flag"
	"testing"
	"time"

	"github.com/louisbranch/onboard/internal/platform/timeouts"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.Backend != "sqlite" {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, "sqlite")
	}
	if cfg.DBPath != "data/onboard.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/onboard.db")
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if cfg.MaxUploadBytes != 8<<20 {
		t.Fatalf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 8<<20)
	}
	if cfg.CMSTimeout != timeouts.BackendRequest {
		t.Fatalf("CMSTimeout = %v, want %v", cfg.CMSTimeout, timeouts.BackendRequest)
	}
	if cfg.TrustForwardedProto {
		t.Fatal("TrustForwardedProto = true, want false")
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("ONBOARD_WEB_PROFILE_BACKEND", "cms")
	t.Setenv("ONBOARD_CMS_BASE_URL", "https://cms.example")
	t.Setenv("ONBOARD_CMS_TOKEN", "secret-token")
	t.Setenv("ONBOARD_WEB_SESSION_TTL", "10m")
	t.Setenv("ONBOARD_WEB_TRUST_FORWARDED_PROTO", "true")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Backend != "cms" || cfg.CMSBaseURL != "https://cms.example" || cfg.CMSToken != "secret-token" {
		t.Fatalf("cms config = %+v", cfg)
	}
	if cfg.SessionTTL != 10*time.Minute {
		t.Fatalf("SessionTTL = %v, want 10m", cfg.SessionTTL)
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("TrustForwardedProto = false, want true")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ONBOARD_WEB_HTTP_ADDR", "env:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002", "-profile-backend", "none", "-catalog-path", "/etc/onboard/catalog.yaml"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.Backend != "none" {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, "none")
	}
	if cfg.CatalogPath != "/etc/onboard/catalog.yaml" {
		t.Fatalf("CatalogPath = %q", cfg.CatalogPath)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("ONBOARD_WEB_SESSION_TTL", "forever")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("ParseConfig() error = nil, want env parse error")
	}
}

func TestServerConfigMapsCMSSettings(t *testing.T) {
	t.Parallel()

	got := serverConfig(Config{
		HTTPAddr:      ":8080",
		Backend:       "cms",
		CMSBaseURL:    "https://cms.example",
		CMSDataset:    "staging",
		CMSAPIVersion: "2021-06-07",
		CMSToken:      "token",
		CMSTimeout:    3 * time.Second,
	})
	if got.CMS.BaseURL != "https://cms.example" || got.CMS.Dataset != "staging" || got.CMS.Token != "token" {
		t.Fatalf("cms config = %+v", got.CMS)
	}
	if got.CMS.HTTPClient == nil || got.CMS.HTTPClient.Timeout != 3*time.Second {
		t.Fatalf("cms http client = %+v", got.CMS.HTTPClient)
	}
	if got.Logger == nil {
		t.Fatal("Logger = nil")
	}
}

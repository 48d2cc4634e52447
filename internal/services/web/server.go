package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/onboard/internal/platform/options"
	"github.com/louisbranch/onboard/internal/platform/timeouts"
	"github.com/louisbranch/onboard/internal/services/web/app"
	"github.com/louisbranch/onboard/internal/services/web/integration/cms"
	"github.com/louisbranch/onboard/internal/services/web/modules"
	"github.com/louisbranch/onboard/internal/services/web/modules/onboarding"
	"github.com/louisbranch/onboard/internal/services/web/platform/metrics"
	"github.com/louisbranch/onboard/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/onboard/internal/services/web/profile"
	"github.com/louisbranch/onboard/internal/services/web/session"
	"github.com/louisbranch/onboard/internal/services/web/storage"
	"github.com/louisbranch/onboard/internal/services/web/storage/sqlite"
)

// Profile backends accepted by Config.Backend.
const (
	BackendCMS    = "cms"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

const (
	defaultMaxUploadBytes = 8 << 20
	// multipartOverhead leaves room for form fields and part headers on top
	// of the upload allowance.
	multipartOverhead = 1 << 20
)

// Config defines the inputs for the onboarding web server.
type Config struct {
	HTTPAddr string
	// Backend selects where completed profiles are written.
	Backend    string
	SQLitePath string
	CMS        cms.Config
	// CatalogPath points at a YAML option catalog replacing the embedded one.
	CatalogPath string
	// SessionSecret signs wizard session cookies. A random secret is used
	// when empty, which drops every draft on restart.
	SessionSecret       string
	SessionTTL          time.Duration
	MaxUploadBytes      int64
	TrustForwardedProto bool
	Logger              *log.Logger
}

// Server hosts the onboarding HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	wizard     onboarding.Module
	closers    []io.Closer
	logger     *log.Logger
}

// NewServer opens the configured profile backend and composes the handler.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	cfg.Logger = loggerOrDefault(cfg.Logger)

	writer, closers, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}
	s := &Server{httpAddr: httpAddr, closers: closers, logger: cfg.Logger}

	handler, wizard, err := build(cfg, writer)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.wizard = wizard
	s.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return s, nil
}

// NewHandler composes the HTTP handler over writer. A nil writer leaves the
// wizard running with submissions reported as unavailable.
func NewHandler(cfg Config, writer profile.Writer) (http.Handler, error) {
	cfg.Logger = loggerOrDefault(cfg.Logger)
	handler, _, err := build(cfg, writer)
	return handler, err
}

func build(cfg Config, writer profile.Writer) (http.Handler, onboarding.Module, error) {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	signer, err := session.NewSigner([]byte(cfg.SessionSecret), ttl, nil)
	if err != nil {
		return nil, onboarding.Module{}, fmt.Errorf("build session signer: %w", err)
	}
	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, onboarding.Module{}, err
	}
	var gateway *profile.Gateway
	if writer != nil {
		gateway = profile.NewGateway(writer)
	}
	recorder := metrics.NewPrometheusRecorder()

	registry, err := modules.Build(modules.Dependencies{
		Onboarding: onboarding.Config{
			Catalog:        catalog,
			Gateway:        gateway,
			Signer:         signer,
			SessionTTL:     ttl,
			MaxUploadBytes: maxUpload,
			Metrics:        recorder,
		},
		Policy: policy,
	})
	if err != nil {
		return nil, onboarding.Module{}, err
	}
	handler, err := app.BuildRootHandler(app.Config{
		Modules:      registry.Modules(),
		Metrics:      recorder.Handler(),
		Policy:       policy,
		MaxBodyBytes: maxUpload + multipartOverhead,
		Logger:       cfg.Logger,
	})
	if err != nil {
		return nil, onboarding.Module{}, fmt.Errorf("compose web handler: %w", err)
	}
	return handler, registry.Onboarding, nil
}

func loadCatalog(path string) (*options.Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return options.Default(), nil
	}
	catalog, err := options.LoadFromFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load option catalog: %w", err)
	}
	return catalog, nil
}

// openBackend returns the profile writer for cfg.Backend plus anything that
// must be closed on shutdown.
func openBackend(cfg Config) (profile.Writer, []io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case BackendCMS:
		if cfg.CMS.Logger == nil {
			cfg.CMS.Logger = cfg.Logger
		}
		client, err := cms.New(cfg.CMS)
		if err != nil {
			return nil, nil, fmt.Errorf("configure cms backend: %w", err)
		}
		return client, nil, nil
	case BackendSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return storage.NewWriter(store), []io.Closer{store}, nil
	case BackendNone, "":
		cfg.Logger.Printf("no profile backend configured, submissions will be reported as unavailable")
		return nil, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown profile backend %q", cfg.Backend)
	}
}

// ListenAndServe runs the HTTP server and the wizard session sweeper until
// the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.wizard.Run(sweepCtx, timeouts.SessionSweep)

	serveErr := make(chan error, 1)
	s.logger.Printf("onboarding web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases backend resources held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	for _, closer := range s.closers {
		if err := closer.Close(); err != nil {
			s.logger.Printf("close profile backend: %v", err)
		}
	}
	s.closers = nil
}

func loggerOrDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}

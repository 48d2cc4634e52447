package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/louisbranch/onboard/internal/platform/options"
	"github.com/louisbranch/onboard/internal/services/web/integration/cms"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
	"github.com/louisbranch/onboard/internal/services/web/storage/sqlite"
)

type submitBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	ID      string            `json:"id"`
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newSQLiteServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "profiles.db")
	s, err := NewServer(Config{
		HTTPAddr:      "127.0.0.1:0",
		Backend:       BackendSQLite,
		SQLitePath:    dbPath,
		SessionSecret: "test-secret",
		Logger:        quietLogger(),
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	srv := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(func() {
		srv.Close()
		s.Close()
	})
	return srv, dbPath
}

type visitor struct {
	t      *testing.T
	srv    *httptest.Server
	client *http.Client
}

func newVisitor(t *testing.T, srv *httptest.Server) *visitor {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New() error = %v", err)
	}
	return &visitor{t: t, srv: srv, client: &http.Client{Jar: jar}}
}

func (v *visitor) get(path string) (*http.Response, string) {
	v.t.Helper()
	resp, err := v.client.Get(v.srv.URL + path)
	if err != nil {
		v.t.Fatalf("GET %s: %v", path, err)
	}
	return resp, readBody(v.t, resp)
}

func (v *visitor) post(path string, form url.Values, accept string) (*http.Response, string) {
	v.t.Helper()
	req, err := http.NewRequest(http.MethodPost, v.srv.URL+path, strings.NewReader(form.Encode()))
	if err != nil {
		v.t.Fatalf("build POST %s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", v.srv.URL)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		v.t.Fatalf("POST %s: %v", path, err)
	}
	return resp, readBody(v.t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func (v *visitor) completeAgentDraft(email string) {
	v.t.Helper()
	if resp, _ := v.get(routepath.Onboarding("agent")); resp.StatusCode != http.StatusOK {
		v.t.Fatalf("wizard status = %d", resp.StatusCode)
	}
	steps := []url.Values{
		{
			"step":       {"0"},
			"action":     {"next"},
			"first_name": {"Ada"},
			"last_name":  {"Lovelace"},
			"email":      {email},
			"country":    {"GB"},
			"bio":        {"<b>Analyst</b>"},
		},
		{
			"step":             {"1"},
			"action":           {"next"},
			"skills":           {"seo", "copywriting"},
			"industries":       {"software_saas"},
			"rate_band":        {"50_100"},
			"availability":     {"full_time"},
			"experience_level": {"senior"},
		},
	}
	for _, form := range steps {
		resp, _ := v.post(routepath.OnboardingStep("agent"), form, "")
		if resp.StatusCode != http.StatusOK || resp.Request.URL.Path != routepath.Onboarding("agent") {
			v.t.Fatalf("step %s landed on %s with %d", form.Get("step"), resp.Request.URL.Path, resp.StatusCode)
		}
	}
}

func TestServerSubmitsAgentProfileToSQLite(t *testing.T) {
	t.Parallel()

	srv, dbPath := newSQLiteServer(t)
	v := newVisitor(t, srv)
	v.completeAgentDraft("ada@example.com")

	resp, body := v.post(routepath.OnboardingSubmit("agent"), nil, "application/json")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit status = %d body = %s", resp.StatusCode, body)
	}
	var got submitBody
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode submit: %v", err)
	}
	if !got.Success || got.ID == "" {
		t.Fatalf("submit response = %+v", got)
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()
	record, err := store.GetProfile(context.Background(), got.ID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if record.Kind != "agent" || record.Email != "ada@example.com" {
		t.Fatalf("record = %+v", record)
	}
	if bytes.Contains(record.Payload, []byte("<b>")) || bytes.Contains(record.Payload, []byte(`\u003cb`)) {
		t.Fatalf("stored payload kept markup: %s", record.Payload)
	}
}

func TestServerRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	srv, _ := newSQLiteServer(t)
	first := newVisitor(t, srv)
	first.completeAgentDraft("grace@example.com")
	if resp, body := first.post(routepath.OnboardingSubmit("agent"), nil, "application/json"); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first submit status = %d body = %s", resp.StatusCode, body)
	}

	second := newVisitor(t, srv)
	second.completeAgentDraft("grace@example.com")
	resp, body := second.post(routepath.OnboardingSubmit("agent"), nil, "application/json")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate submit status = %d body = %s", resp.StatusCode, body)
	}
	var got submitBody
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode submit: %v", err)
	}
	if got.Success || got.Errors["email"] != "A profile with this email already exists." {
		t.Fatalf("duplicate response = %+v", got)
	}
}

func TestServerServesSiteSurfaces(t *testing.T) {
	t.Parallel()

	srv, _ := newSQLiteServer(t)
	v := newVisitor(t, srv)

	tests := []struct {
		path   string
		status int
		marker string
	}{
		{path: "/", status: http.StatusOK, marker: routepath.Onboarding("client")},
		{path: "/static/onboard.css", status: http.StatusOK, marker: ".wizard-steps"},
		{path: "/api/options/countries?format=select", status: http.StatusOK, marker: `"label"`},
		{path: "/healthz", status: http.StatusOK, marker: `"status":"ok"`},
		{path: "/missing", status: http.StatusNotFound, marker: `data-status="404"`},
	}
	for _, tc := range tests {
		resp, body := v.get(tc.path)
		if resp.StatusCode != tc.status {
			t.Fatalf("GET %s status = %d, want %d", tc.path, resp.StatusCode, tc.status)
		}
		if !strings.Contains(body, tc.marker) {
			t.Fatalf("GET %s body missing %q", tc.path, tc.marker)
		}
		if resp.Header.Get("X-Request-ID") == "" {
			t.Fatalf("GET %s missing request id", tc.path)
		}
	}

	v.get(routepath.Onboarding("agent"))
	_, metrics := v.get(routepath.Metrics)
	if !strings.Contains(metrics, `onboard_active_sessions{kind="agent"} 1`) {
		t.Fatalf("metrics missing active session gauge:\n%s", metrics)
	}
}

func TestServerRejectsCrossOriginPosts(t *testing.T) {
	t.Parallel()

	srv, _ := newSQLiteServer(t)
	req, err := http.NewRequest(http.MethodPost, srv.URL+routepath.OnboardingReset("agent"), nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Origin", "http://evil.test")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("POST reset: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

func TestNewHandlerWithoutBackendIsDegraded(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(Config{Logger: quietLogger()}, nil)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("health status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rr.Body.String(), `"onboarding":false`) {
		t.Fatalf("health body = %s", rr.Body.String())
	}
}

// writeCatalog writes a one-option-per-category catalog file, skipping the
// listed categories.
func writeCatalog(t *testing.T, skip ...options.Category) string {
	t.Helper()
	var doc strings.Builder
	for _, category := range []options.Category{
		options.Skills, options.Industries, options.RateBands, options.BudgetBands, options.Availability,
		options.ExperienceLevels, options.Timelines, options.Countries, options.SocialPlatforms,
	} {
		if slices.Contains(skip, category) {
			continue
		}
		fmt.Fprintf(&doc, "%s:\n  - {title: \"Falconry\", value: \"falconry\"}\n", category)
	}
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc.String()), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestNewHandlerLoadsCatalogFile(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(Config{CatalogPath: writeCatalog(t), Logger: quietLogger()}, nil)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.OptionsPrefix+"skills?format=select", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var got struct {
		Options []options.SelectOption `json:"options"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(got.Options) != 1 || got.Options[0].Label != "Falconry" {
		t.Fatalf("skills = %+v, want only Falconry", got.Options)
	}
}

func TestNewHandlerRejectsCatalogMissingWizardCategory(t *testing.T) {
	t.Parallel()

	_, err := NewHandler(Config{CatalogPath: writeCatalog(t, options.Countries), Logger: quietLogger()}, nil)
	if err == nil {
		t.Fatal("expected catalog without countries to be rejected")
	}
	if !strings.Contains(err.Error(), `"countries"`) {
		t.Fatalf("error = %v, want it to name the countries category", err)
	}
}

func TestNewServerValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "missing addr", cfg: Config{}, want: "http address is required"},
		{name: "unknown backend", cfg: Config{HTTPAddr: ":0", Backend: "ftp"}, want: `unknown profile backend "ftp"`},
		{name: "sqlite without path", cfg: Config{HTTPAddr: ":0", Backend: BackendSQLite}, want: "open sqlite backend"},
		{name: "missing catalog", cfg: Config{HTTPAddr: ":0", CatalogPath: filepath.Join(t.TempDir(), "absent.yaml")}, want: "load option catalog"},
		{name: "cms without dataset", cfg: Config{HTTPAddr: ":0", Backend: BackendCMS, CMS: cms.Config{BaseURL: "https://cms.example", APIVersion: "2021-06-07"}}, want: "configure cms backend"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.cfg.Logger = quietLogger()
			_, err := NewServer(tc.cfg)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("NewServer() error = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	s, err := NewServer(Config{HTTPAddr: "127.0.0.1:0", Backend: BackendNone, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.ListenAndServe(ctx); err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}

package onboarding

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/onboard/internal/services/web/profile"
	"github.com/louisbranch/onboard/internal/services/web/session"
)

type fakeWriter struct {
	mu      sync.Mutex
	agents  []*profile.AgentProfile
	clients []*profile.ClientProfile
	id      string
	err     error
	block   chan struct{}
	entered chan struct{}
}

func (w *fakeWriter) CreateAgentProfile(_ context.Context, p *profile.AgentProfile) (string, error) {
	w.wait()
	w.mu.Lock()
	defer w.mu.Unlock()
	w.agents = append(w.agents, p.Clone())
	return w.id, w.err
}

func (w *fakeWriter) CreateClientProfile(_ context.Context, p *profile.ClientProfile) (string, error) {
	w.wait()
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clients = append(w.clients, p.Clone())
	return w.id, w.err
}

func (w *fakeWriter) wait() {
	if w.entered != nil {
		close(w.entered)
	}
	if w.block != nil {
		<-w.block
	}
}

type navigation struct {
	kind     string
	action   string
	advanced bool
}

type fakeRecorder struct {
	mu          sync.Mutex
	navigations []navigation
	outcomes    []string
	active      map[string]int
}

func (r *fakeRecorder) ObserveNavigation(kind, action string, advanced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigations = append(r.navigations, navigation{kind: kind, action: action, advanced: advanced})
}

func (r *fakeRecorder) ObserveSubmission(kind, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, kind+":"+outcome)
}

func (r *fakeRecorder) SetActiveSessions(kind string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		r.active = map[string]int{}
	}
	r.active[kind] = count
}

type testEnv struct {
	module   Module
	handler  http.Handler
	writer   *fakeWriter
	recorder *fakeRecorder
}

func newTestEnv(t *testing.T, writer *fakeWriter, opts ...session.Option) testEnv {
	t.Helper()
	signer, err := session.NewSigner([]byte("test-secret"), time.Hour, nil)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	recorder := &fakeRecorder{}
	var gateway *profile.Gateway
	if writer != nil {
		gateway = profile.NewGateway(writer)
	}
	m, err := New(Config{
		Gateway:        gateway,
		Signer:         signer,
		SessionTTL:     time.Hour,
		Metrics:        recorder,
		SessionOptions: opts,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return testEnv{module: m, handler: mount.Handler, writer: writer, recorder: recorder}
}

// browser replays cookies between requests like a user agent would.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, handler http.Handler) *browser {
	return &browser{t: t, handler: handler, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	b.handler.ServeHTTP(rr, req)
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(b.cookies, cookie.Name)
			continue
		}
		b.cookies[cookie.Name] = cookie
	}
	return rr
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return b.do(req)
}

func (b *browser) htmx(path string, form url.Values) *httptest.ResponseRecorder {
	return b.post(path, form, "HX-Request", "true")
}

func (b *browser) json(path string) *httptest.ResponseRecorder {
	return b.post(path, url.Values{}, "Accept", "application/json")
}

type upload struct {
	field       string
	filename    string
	contentType string
	data        string
}

func (b *browser) multipart(path string, form url.Values, files ...upload) *httptest.ResponseRecorder {
	b.t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, values := range form {
		for _, value := range values {
			if err := mw.WriteField(key, value); err != nil {
				b.t.Fatalf("WriteField(%q) error = %v", key, err)
			}
		}
	}
	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.filename+`"`)
		header.Set("Content-Type", file.contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			b.t.Fatalf("CreatePart(%q) error = %v", file.field, err)
		}
		_, _ = io.WriteString(part, file.data)
	}
	if err := mw.Close(); err != nil {
		b.t.Fatalf("multipart close error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	return b.do(req)
}

func personalAgentForm() url.Values {
	return url.Values{
		"step":       {"0"},
		"action":     {"next"},
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"email":      {"ada@example.com"},
		"country":    {"GB"},
		"bio":        {"Analyst"},
	}
}

func agentDetailsForm() url.Values {
	return url.Values{
		"step":                      {"1"},
		"action":                    {"next"},
		"skills":                    {"seo", "copywriting"},
		"industries":                {"software_saas"},
		"rate_band":                 {"50_100"},
		"availability":              {"full_time"},
		"experience_level":          {"senior"},
		"social_links.new_platform": {"linkedin"},
		"social_links.new_url":      {"https://linkedin.com/in/ada"},
	}
}

// request builds a request carrying the browser cookies without recording
// the response.
func (b *browser) request(method, path string, form url.Values, headers ...string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}
	return req
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

package onboarding

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/onboard/internal/platform/options"
	webi18n "github.com/louisbranch/onboard/internal/services/web/i18n"
	apperrors "github.com/louisbranch/onboard/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/onboard/internal/services/web/platform/flash"
	"github.com/louisbranch/onboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/onboard/internal/services/web/platform/metrics"
	"github.com/louisbranch/onboard/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/onboard/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/onboard/internal/services/web/profile"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
	"github.com/louisbranch/onboard/internal/services/web/session"
	webtemplates "github.com/louisbranch/onboard/internal/services/web/templates"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// Submission outcomes reported to metrics.
const (
	outcomeCreated     = "created"
	outcomeIncomplete  = "incomplete"
	outcomeRejected    = "rejected"
	outcomeUnavailable = "unavailable"
)

type handlers struct {
	modulehandler.Base
	flows     map[profile.Kind]*flow
	catalog   *options.Catalog
	signer    *session.Signer
	ttl       time.Duration
	maxMemory int64
	metrics   metrics.Recorder
}

// submitResponse is the JSON body of a submission.
type submitResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	ID      string            `json:"id,omitempty"`
}

func (h handlers) handleWizard(w http.ResponseWriter, r *http.Request) {
	f, err := h.flowFor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	form, _, stale := h.lookup(r, f)
	if form == nil {
		form, err = h.start(w, r, f)
		if err != nil {
			h.WriteError(w, r, err)
			return
		}
		if stale {
			h.Flash(w, r, flashnotice.Info("flash.session_expired"))
			httpx.WriteRedirect(w, r, routepath.Onboarding(f.kind.String()))
			return
		}
	}
	h.render(w, r, f, form, http.StatusOK)
}

func (h handlers) handleStep(w http.ResponseWriter, r *http.Request) {
	f, form, _, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	if err := parseForm(r, h.maxMemory); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.saveStep(r, form); err != nil {
		h.WriteError(w, r, err)
		return
	}

	action := strings.TrimSpace(r.PostForm.Get("action"))
	before := form.Step()
	switch action {
	case actionNext:
		form.Next()
	case actionPrev:
		form.Prev()
	case actionFirst:
		form.GoToFirstSection()
	case "", actionSave:
		action = actionSave
	default:
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.form.parse", "unknown wizard action "+strconv.Quote(action)))
		return
	}
	if action != actionSave {
		h.metrics.ObserveNavigation(f.kind.String(), action, form.Step() != before)
	}
	h.respond(w, r, f, form)
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	f, form, _, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	if err := parseForm(r, h.maxMemory); err != nil {
		h.WriteError(w, r, err)
		return
	}
	field := strings.TrimSpace(r.PostForm.Get("field"))
	if field == "" {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.form.parse", "toggle field is required"))
		return
	}
	update := wizard.ToggleChoice{Field: wizard.Field(field), Value: strings.TrimSpace(r.PostForm.Get("value"))}
	if err := applyUpdates(form, []wizard.Update{update}); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.respond(w, r, f, form)
}

func (h handlers) handleLinks(w http.ResponseWriter, r *http.Request) {
	f, form, _, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	if err := parseForm(r, h.maxMemory); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.saveStep(r, form); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if raw := strings.TrimSpace(r.PostForm.Get("remove")); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.form.parse", "link index must be a number"))
			return
		}
		field, ok := linksField(form.CurrentStep())
		if !ok {
			h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.form.parse", "step has no links editor"))
			return
		}
		// A stale index leaves the list as is.
		if err := form.Set(wizard.RemoveLink{Field: field, Index: index}); err != nil && !errors.Is(err, wizard.ErrInvalidUpdate) {
			h.WriteError(w, r, formError(err))
			return
		}
	}
	h.respond(w, r, f, form)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	f, form, sessionID, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	kind := f.kind.String()
	started := time.Now()
	result, err := form.SubmitDraft(r.Context())
	if err != nil {
		err = formError(err)
		if httpx.WantsJSON(r) || errors.Is(err, wizard.ErrNotFinalStep) {
			h.WriteError(w, r, err)
			return
		}
		if key := apperrors.LocalizationKey(err); key != "" {
			h.Flash(w, r, flashnotice.Info(key))
		}
		h.respond(w, r, f, form)
		return
	}
	h.metrics.ObserveSubmission(kind, outcomeOf(result), time.Since(started))

	view := h.view(f, form)
	if result.Success {
		f.sessions.Delete(sessionID)
		h.metrics.SetActiveSessions(kind, f.sessions.Len())
		sessioncookie.Clear(w, r, sessioncookie.Name(kind), h.Policy())
	}

	if httpx.WantsJSON(r) {
		page := h.Page(w, r)
		_ = httpx.WriteJSON(w, submitStatus(result), localizeResult(page.Loc, result))
		return
	}
	if result.Success {
		page := h.Page(w, r)
		h.WritePage(w, r, page, "title.onboarding", http.StatusOK, webtemplates.Wizard(page, view))
		return
	}
	h.respond(w, r, f, form)
}

func (h handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	f, err := h.flowFor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	kind := f.kind.String()
	if form, sessionID, _ := h.lookup(r, f); form != nil {
		if form.InFlight() {
			h.WriteError(w, r, formError(wizard.ErrSubmissionInFlight))
			return
		}
		f.sessions.Delete(sessionID)
		h.metrics.SetActiveSessions(kind, f.sessions.Len())
	}
	sessioncookie.Clear(w, r, sessioncookie.Name(kind), h.Policy())
	h.Flash(w, r, flashnotice.Info("flash.reset"))
	httpx.WriteRedirect(w, r, routepath.Onboarding(kind))
}

func (h handlers) flowFor(r *http.Request) (*flow, error) {
	kind, err := profile.ParseKind(r.PathValue("kind"))
	if err != nil {
		return nil, err
	}
	f, ok := h.flows[kind]
	if !ok {
		return nil, apperrors.EK(apperrors.KindNotFound, "error.not_found", "wizard is not mounted")
	}
	return f, nil
}

// lookup returns the live form named by the session cookie. stale reports a
// cookie that no longer names a live session.
func (h handlers) lookup(r *http.Request, f *flow) (form wizardForm, sessionID string, stale bool) {
	kind := f.kind.String()
	raw, ok := sessioncookie.Read(r, sessioncookie.Name(kind))
	if !ok {
		return nil, "", false
	}
	sessionID, err := h.signer.Verify(raw, kind)
	if err != nil {
		return nil, "", true
	}
	form, ok = f.sessions.Get(sessionID)
	if !ok {
		return nil, "", true
	}
	return form, sessionID, false
}

// start opens a fresh session and hands its token to the browser.
func (h handlers) start(w http.ResponseWriter, r *http.Request, f *flow) (wizardForm, error) {
	kind := f.kind.String()
	form, err := f.newForm()
	if err != nil {
		return nil, err
	}
	sessionID, err := f.sessions.Create(form)
	if err != nil {
		return nil, err
	}
	token, err := h.signer.Sign(sessionID, kind)
	if err != nil {
		f.sessions.Delete(sessionID)
		return nil, err
	}
	sessioncookie.Write(w, r, sessioncookie.Name(kind), token, h.ttl, h.Policy())
	h.metrics.SetActiveSessions(kind, f.sessions.Len())
	return form, nil
}

// requireSession resolves the form a mutation applies to. Without a live
// session the browser is sent back to a fresh wizard and ok is false.
func (h handlers) requireSession(w http.ResponseWriter, r *http.Request) (f *flow, form wizardForm, sessionID string, ok bool) {
	f, err := h.flowFor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return nil, nil, "", false
	}
	form, sessionID, stale := h.lookup(r, f)
	if form != nil {
		return f, form, sessionID, true
	}
	if httpx.WantsJSON(r) {
		h.WriteError(w, r, apperrors.EK(apperrors.KindSessionExpiry, "flash.session_expired", "wizard session expired"))
		return nil, nil, "", false
	}
	if _, err := h.start(w, r, f); err != nil {
		h.WriteError(w, r, err)
		return nil, nil, "", false
	}
	if stale {
		h.Flash(w, r, flashnotice.Info("flash.session_expired"))
	}
	httpx.WriteRedirect(w, r, routepath.Onboarding(f.kind.String()))
	return nil, nil, "", false
}

func (h handlers) saveStep(r *http.Request, form wizardForm) error {
	if !postedStep(r, form.Step()) {
		return nil
	}
	updates, err := stepUpdates(r, form.CurrentStep())
	if err != nil {
		return err
	}
	return applyUpdates(form, updates)
}

// respond re-renders the wizard for HTMX and redirects plain form posts.
func (h handlers) respond(w http.ResponseWriter, r *http.Request, f *flow, form wizardForm) {
	if httpx.IsHTMXRequest(r) {
		h.render(w, r, f, form, http.StatusOK)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Onboarding(f.kind.String()))
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, f *flow, form wizardForm, statusCode int) {
	page := h.Page(w, r)
	h.WritePage(w, r, page, "title.onboarding", statusCode, webtemplates.Wizard(page, h.view(f, form)))
}

func (h handlers) view(f *flow, form wizardForm) webtemplates.WizardView {
	steps := form.Steps()
	view := webtemplates.WizardView{
		Kind:       f.kind.String(),
		HeadingKey: f.headingKey,
		Steps:      steps,
		Index:      form.Step(),
		Value:      form.Snapshot(),
		Errors:     form.Errors(),
		InFlight:   form.InFlight(),
		Submitted:  form.Submitted(),
		Catalog:    h.catalog,
	}
	if result, ok := form.LastResult(); ok && view.Index == len(steps)-1 {
		view.Result = &result
	}
	return view
}

func linksField(step wizard.Step) (wizard.Field, bool) {
	for _, spec := range step.Fields {
		if spec.Kind == wizard.KindLinks {
			return spec.Field, true
		}
	}
	return "", false
}

func outcomeOf(result wizard.Result) string {
	switch {
	case result.Success:
		return outcomeCreated
	case result.Message == wizard.KeyIncomplete:
		return outcomeIncomplete
	case result.Message == profile.MessageUnavailable:
		return outcomeUnavailable
	default:
		return outcomeRejected
	}
}

func submitStatus(result wizard.Result) int {
	switch outcomeOf(result) {
	case outcomeCreated:
		return http.StatusCreated
	case outcomeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}

func localizeResult(loc webi18n.Localizer, result wizard.Result) submitResponse {
	out := submitResponse{
		Success: result.Success,
		Message: webi18n.Text(loc, result.Message),
		ID:      result.ID,
	}
	if len(result.Errors) > 0 {
		out.Errors = make(map[string]string, len(result.Errors))
		for field, key := range result.Errors {
			out.Errors[field] = webi18n.Text(loc, key)
		}
	}
	return out
}

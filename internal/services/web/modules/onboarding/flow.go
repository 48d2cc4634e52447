package onboarding

import (
	"context"
	"time"

	"github.com/louisbranch/onboard/internal/platform/options"
	"github.com/louisbranch/onboard/internal/services/web/profile"
	"github.com/louisbranch/onboard/internal/services/web/session"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// wizardForm is the kind-independent view of one wizard session.
type wizardForm interface {
	Set(wizard.Update) error
	Next() bool
	Prev()
	GoToFirstSection()
	Step() int
	Steps() []wizard.Step
	CurrentStep() wizard.Step
	Errors() wizard.ValidationErrors
	LastResult() (wizard.Result, bool)
	InFlight() bool
	Submitted() bool
	Snapshot() func(wizard.Field) wizard.Value
	SubmitDraft(ctx context.Context) (wizard.Result, error)
}

// boundForm pairs a typed form with the gateway of its variant.
type boundForm[D wizard.Draft[D]] struct {
	*wizard.Form[D]
	gateway wizard.Gateway[D]
}

func (f boundForm[D]) Snapshot() func(wizard.Field) wizard.Value {
	draft := f.Values()
	return func(field wizard.Field) wizard.Value {
		value, _ := draft.Get(field)
		return value
	}
}

func (f boundForm[D]) SubmitDraft(ctx context.Context) (wizard.Result, error) {
	return f.Submit(ctx, f.gateway)
}

// flow owns the sessions of one wizard variant.
type flow struct {
	kind       profile.Kind
	headingKey string
	newForm    func() (wizardForm, error)
	sessions   *session.Registry[wizardForm]
}

func newFlow[D wizard.Draft[D]](kind profile.Kind, headingKey string, build func(wizard.Domain) (*wizard.Form[D], error), catalog *options.Catalog, gateway wizard.Gateway[D], ttl time.Duration, opts ...session.Option) *flow {
	return &flow{
		kind:       kind,
		headingKey: headingKey,
		newForm: func() (wizardForm, error) {
			form, err := build(catalog)
			if err != nil {
				return nil, err
			}
			return boundForm[D]{Form: form, gateway: gateway}, nil
		},
		sessions: session.NewRegistry[wizardForm](ttl, opts...),
	}
}

func agentFlow(catalog *options.Catalog, gateway *profile.Gateway, ttl time.Duration, opts ...session.Option) *flow {
	return newFlow(profile.KindAgent, "wizard.heading.agent", profile.NewAgentForm, catalog, gateway.Agent(), ttl, opts...)
}

func clientFlow(catalog *options.Catalog, gateway *profile.Gateway, ttl time.Duration, opts ...session.Option) *flow {
	return newFlow(profile.KindClient, "wizard.heading.client", profile.NewClientForm, catalog, gateway.Client(), ttl, opts...)
}

package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/onboard/internal/services/web/routepath"
)

// LandingCard is one call to action on the landing page.
type LandingCard struct {
	Kind     string
	TitleKey string
	BodyKey  string
	CTAKey   string
}

// LandingCards returns the agent and client entry points.
func LandingCards() []LandingCard {
	return []LandingCard{
		{Kind: "agent", TitleKey: "landing.agent.title", BodyKey: "landing.agent.body", CTAKey: "landing.agent.cta"},
		{Kind: "client", TitleKey: "landing.client.title", BodyKey: "landing.client.body", CTAKey: "landing.client.cta"},
	}
}

// Landing renders the landing page body.
func Landing(page PageContext) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="hero"><h1>`)
		h.text(page.T("landing.heading"))
		h.raw(`</h1><p class="tagline">`)
		h.text(page.T("landing.tagline"))
		h.raw(`</p></section><section class="landing-cards">`)
		for _, card := range LandingCards() {
			h.raw(`<article class="landing-card"`)
			h.attr("data-kind", card.Kind)
			h.raw("><h2>")
			h.text(page.T(card.TitleKey))
			h.raw("</h2><p>")
			h.text(page.T(card.BodyKey))
			h.raw(`</p><a class="button"`)
			h.attr("href", routepath.Onboarding(card.Kind))
			h.raw(">")
			h.text(page.T(card.CTAKey))
			h.raw("</a></article>")
		}
		h.raw("</section>")
	})
}

// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                    = "/"
	Health                  = "/healthz"
	Metrics                 = "/metrics"
	StaticPrefix            = "/static/"
	OnboardingPrefix        = "/onboarding/"
	OnboardingPattern       = OnboardingPrefix + "{kind}"
	OnboardingStepPattern   = OnboardingPrefix + "{kind}/step"
	OnboardingTogglePattern = OnboardingPrefix + "{kind}/toggle"
	OnboardingLinksPattern  = OnboardingPrefix + "{kind}/links"
	OnboardingSubmitPattern = OnboardingPrefix + "{kind}/submit"
	OnboardingResetPattern  = OnboardingPrefix + "{kind}/reset"
	OptionsPrefix           = "/api/options/"
	OptionsPattern          = OptionsPrefix + "{category}"
)

// Onboarding returns the wizard route for kind.
func Onboarding(kind string) string {
	return OnboardingPrefix + escapeSegment(kind)
}

// OnboardingStep returns the step save-and-navigate route.
func OnboardingStep(kind string) string {
	return Onboarding(kind) + "/step"
}

// OnboardingToggle returns the multi-select toggle route.
func OnboardingToggle(kind string) string {
	return Onboarding(kind) + "/toggle"
}

// OnboardingLinks returns the social links editor route.
func OnboardingLinks(kind string) string {
	return Onboarding(kind) + "/links"
}

// OnboardingSubmit returns the final submission route.
func OnboardingSubmit(kind string) string {
	return Onboarding(kind) + "/submit"
}

// OnboardingReset returns the draft reset route.
func OnboardingReset(kind string) string {
	return Onboarding(kind) + "/reset"
}

// Options returns the option catalog API route for category, with an
// optional format query.
func Options(category string, format string) string {
	path := OptionsPrefix + escapeSegment(category)
	format = strings.TrimSpace(format)
	if format == "" {
		return path
	}
	return path + "?format=" + url.QueryEscape(format)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

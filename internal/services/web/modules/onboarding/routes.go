package onboarding

import (
	"net/http"

	"github.com/louisbranch/onboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.OnboardingPattern, h.handleWizard)
	mux.HandleFunc(http.MethodPost+" "+routepath.OnboardingStepPattern, h.handleStep)
	mux.HandleFunc(http.MethodPost+" "+routepath.OnboardingTogglePattern, h.handleToggle)
	mux.HandleFunc(http.MethodPost+" "+routepath.OnboardingLinksPattern, h.handleLinks)
	mux.HandleFunc(http.MethodPost+" "+routepath.OnboardingSubmitPattern, h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.OnboardingResetPattern, h.handleReset)
	mux.HandleFunc(routepath.OnboardingPrefix, h.WriteNotFound)
}

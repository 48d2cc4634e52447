package catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/onboard/internal/platform/options"
	apperrors "github.com/louisbranch/onboard/internal/services/web/platform/errors"
	"github.com/louisbranch/onboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/onboard/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/onboard/internal/services/web/platform/weberror"
)

// Response shapes selected by the format query parameter.
const (
	formatOnboarding = "onboarding"
	formatSelect     = "select"
)

type handlers struct {
	modulehandler.Base
	catalog *options.Catalog
}

type categoriesResponse struct {
	Categories []options.Category `json:"categories"`
}

type optionsResponse struct {
	Category options.Category `json:"category"`
	Format   string           `json:"format"`
	Options  any              `json:"options"`
}

func (h handlers) handleCategories(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, categoriesResponse{Categories: h.catalog.Categories()})
}

func (h handlers) handleOptions(w http.ResponseWriter, r *http.Request) {
	category := options.Category(strings.TrimSpace(r.PathValue("category")))
	entries, err := h.catalog.Options(category)
	if err != nil {
		if errors.Is(err, options.ErrUnknownCategory) {
			err = apperrors.Wrap(apperrors.KindNotFound, "error.not_found", err)
		}
		h.writeJSONError(w, r, err)
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	resp := optionsResponse{Category: category, Format: format}
	switch format {
	case "", formatOnboarding:
		resp.Format = formatOnboarding
		resp.Options = options.ToOnboardingFormat(entries)
	case formatSelect:
		resp.Options = options.ToSelectFormat(entries)
	default:
		h.writeJSONError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.form.parse", "unknown option format "+format))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

// writeJSONError answers in JSON whatever the Accept header says.
func (h handlers) writeJSONError(w http.ResponseWriter, r *http.Request, err error) {
	page := h.Page(w, r)
	_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), weberror.PublicMessage(page.Loc, err))
}

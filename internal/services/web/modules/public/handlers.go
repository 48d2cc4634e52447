package public

import (
	"net/http"

	"github.com/louisbranch/onboard/internal/services/web/platform/modulehandler"
	webtemplates "github.com/louisbranch/onboard/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	page := h.Page(w, r)
	h.WritePage(w, r, page, "title.landing", http.StatusOK, webtemplates.Landing(page))
}

package onboarding

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/onboard/internal/services/web/platform/errors"
	webtemplates "github.com/louisbranch/onboard/internal/services/web/templates"
	"github.com/louisbranch/onboard/internal/services/web/wizard"
)

// Navigation actions posted by the step forms.
const (
	actionNext  = "next"
	actionPrev  = "prev"
	actionFirst = "first"
	actionSave  = "save"
)

// parseForm parses url-encoded and multipart bodies alike. Multipart parts
// beyond maxMemory spill to temporary files.
func parseForm(r *http.Request, maxMemory int64) error {
	var err error
	if isMultipart(r) {
		err = r.ParseMultipartForm(maxMemory)
	} else {
		err = r.ParseForm()
	}
	if err == nil {
		return nil
	}
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return apperrors.Wrap(apperrors.KindTooLarge, "error.too_large", err)
	}
	return apperrors.Wrap(apperrors.KindInvalidInput, "error.form.parse", err)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// postedStep reports whether the body was rendered for step index. Saves
// from a stale page are skipped so they cannot overwrite another step.
func postedStep(r *http.Request, index int) bool {
	raw, ok := r.PostForm["step"]
	if !ok || len(raw) == 0 {
		return false
	}
	posted, err := strconv.Atoi(strings.TrimSpace(raw[0]))
	return err == nil && posted == index
}

// stepUpdates converts the posted inputs of step into field updates.
// Text and single-choice inputs are only updated when present. Multi-choice
// and links always are, since unchecked boxes and removed rows post nothing.
func stepUpdates(r *http.Request, step wizard.Step) ([]wizard.Update, error) {
	var updates []wizard.Update
	for _, spec := range step.Fields {
		name := string(spec.Field)
		switch spec.Kind {
		case wizard.KindMultiChoice:
			updates = append(updates, wizard.SetChoices{Field: spec.Field, Values: r.PostForm[name]})
		case wizard.KindLinks:
			updates = append(updates, wizard.SetLinks{Field: spec.Field, Links: postedLinks(r, name)})
		case wizard.KindAttachment:
			file, err := postedFile(r, name)
			if err != nil {
				return nil, err
			}
			switch {
			case file != nil:
				updates = append(updates, wizard.SetAttachment{Field: spec.Field, File: file})
			case r.PostForm.Get(name+webtemplates.ClearSuffix) != "":
				updates = append(updates, wizard.SetAttachment{Field: spec.Field})
			}
		default:
			if values, ok := r.PostForm[name]; ok && len(values) > 0 {
				updates = append(updates, wizard.SetText{Field: spec.Field, Text: values[0]})
			}
		}
	}
	return updates, nil
}

// postedLinks zips the platform and url columns of the links editor and
// appends the new-link row when it was filled in.
func postedLinks(r *http.Request, name string) []wizard.Link {
	platforms := r.PostForm[name+webtemplates.LinkPlatformSuffix]
	urls := r.PostForm[name+webtemplates.LinkURLSuffix]
	rows := max(len(platforms), len(urls))
	links := make([]wizard.Link, 0, rows+1)
	for i := range rows {
		var link wizard.Link
		if i < len(platforms) {
			link.Platform = platforms[i]
		}
		if i < len(urls) {
			link.URL = urls[i]
		}
		links = append(links, link)
	}
	extra := wizard.Link{
		Platform: r.PostForm.Get(name + webtemplates.NewLinkPlatformSuffix),
		URL:      r.PostForm.Get(name + webtemplates.NewLinkURLSuffix),
	}
	if strings.TrimSpace(extra.Platform) != "" || strings.TrimSpace(extra.URL) != "" {
		links = append(links, extra)
	}
	return links
}

// postedFile reads the uploaded file for name. An empty file input yields nil.
func postedFile(r *http.Request, name string) (*wizard.Attachment, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[name]
	if len(headers) == 0 || strings.TrimSpace(headers[0].Filename) == "" {
		return nil, nil
	}
	header := headers[0]
	file, err := header.Open()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "error.form.parse", fmt.Errorf("open upload %s: %w", name, err))
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "error.form.parse", fmt.Errorf("read upload %s: %w", name, err))
	}
	if len(data) == 0 {
		return nil, nil
	}
	contentType := strings.TrimSpace(header.Header.Get("Content-Type"))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return &wizard.Attachment{Filename: header.Filename, ContentType: contentType, Data: data}, nil
}

// applyUpdates applies every update and ignores field validation failures;
// those are recorded on the form and rendered with the step.
func applyUpdates(form wizardForm, updates []wizard.Update) error {
	for _, update := range updates {
		err := form.Set(update)
		if err == nil {
			continue
		}
		var fieldErr *wizard.FieldError
		if errors.As(err, &fieldErr) {
			continue
		}
		return formError(err)
	}
	return nil
}

// formError classifies wizard errors for the HTTP layer.
func formError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrSubmissionInFlight):
		return apperrors.Wrap(apperrors.KindConflict, "submit.in_flight", err)
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		return apperrors.Wrap(apperrors.KindConflict, "submit.done", err)
	case errors.Is(err, wizard.ErrNotFinalStep):
		return apperrors.Wrap(apperrors.KindConflict, "submit.incomplete", err)
	case errors.Is(err, wizard.ErrUnknownField), errors.Is(err, wizard.ErrWrongKind), errors.Is(err, wizard.ErrInvalidUpdate):
		return apperrors.Wrap(apperrors.KindInvalidInput, "error.form.parse", err)
	default:
		return err
	}
}

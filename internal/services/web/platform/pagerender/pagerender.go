// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/solcalc/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/solcalc/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/solcalc/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
	// Language and Localizer reuse a resolution already made by the handler.
	// When Localizer is nil the request language is resolved here.
	Language  string
	Localizer webi18n.Localizer
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page using shared app-shell rendering
// contracts. Nothing is written when rendering fails.
func WriteModulePage(w http.ResponseWriter, r *http.Request, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	loc, lang := page.Localizer, page.Language
	if loc == nil {
		loc, lang = webi18n.ResolveLocalizer(w, r)
	}
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.AppMainContent().Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		if err := webtemplates.AppLayout(page.Title, lang, loc).Render(ctx, &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

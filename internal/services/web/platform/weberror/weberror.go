// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/solcalc/internal/services/web/platform/errors"
	"github.com/louisbranch/solcalc/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/solcalc/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/solcalc/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized app-shell error response for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	ctx := templ.WithChildren(httpx.RequestContext(r), webtemplates.AppErrorState(statusCode, loc))

	var page templ.Component
	if httpx.IsHTMXRequest(r) {
		page = webtemplates.AppMainContent()
	} else {
		page = webtemplates.AppLayout(webtemplates.AppErrorPageTitle(statusCode, loc), lang, loc)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := page.Render(ctx, w); err != nil {
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

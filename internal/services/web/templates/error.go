package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/solcalc/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "web.error.page_title_server_error"
	appErrorMessageNotFoundKey    = "web.error.message_not_found"
	appErrorMessageServerErrKey   = "web.error.message_server_error"
	appErrorBackTextKey           = "web.error.action_back"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AppErrorState renders the error fragment for a status code.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw("<section id=\"app-error-state\" class=\"app-error\"><h1>")
		m.text(AppErrorPageTitle(statusCode, loc))
		m.raw("</h1><p>")
		m.text(appErrorMessage(statusCode, loc))
		m.raw("</p><a")
		m.href(routepath.Root)
		m.raw(">")
		m.text(T(loc, appErrorBackTextKey))
		m.raw("</a></section>")
		return m.err
	})
}

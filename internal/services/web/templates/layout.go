package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/solcalc/internal/services/web/platform/i18n"
	"github.com/louisbranch/solcalc/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// MainID is the element id of the swappable main content region.
const MainID = "main"

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
	URL    string
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(lang string, loc Localizer) []LanguageOption {
	supported := webi18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  T(loc, languageKeyLabel(tag)),
			Active: strings.EqualFold(tag.String(), strings.TrimSpace(lang)),
			URL:    routepath.Root + "?" + webi18n.LangParam + "=" + tag.String(),
		})
	}
	return options
}

func languageKeyLabel(tag language.Tag) string {
	switch tag {
	case language.BrazilianPortuguese:
		return "nav.lang_pt_br"
	default:
		return "nav.lang_en"
	}
}

// AppLayout renders the full document shell around the children component.
func AppLayout(title string, lang string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw("<!doctype html><html")
		m.attr("lang", lang)
		m.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		m.text(title)
		m.raw("</title><link rel=\"stylesheet\"")
		m.href(routepath.StaticPrefix + "app.css")
		m.raw("></head><body><nav class=\"lang-switcher\">")
		for _, option := range LanguageOptions(lang, loc) {
			m.raw("<a")
			m.href(option.URL)
			m.attr("hreflang", option.Tag)
			if option.Active {
				m.raw(" aria-current=\"true\"")
			}
			m.raw(">")
			m.text(option.Label)
			m.raw("</a>")
		}
		m.raw("</nav>")
		if m.err != nil {
			return m.err
		}
		if err := AppMainContent().Render(ctx, w); err != nil {
			return err
		}
		m.raw("</body></html>")
		return m.err
	})
}

// AppMainContent renders the main region wrapping the children component.
// HTMX requests receive this region on its own.
func AppMainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw("<main")
		m.attr("id", MainID)
		m.raw(">")
		if m.err != nil {
			return m.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		m.raw("</main>")
		return m.err
	})
}

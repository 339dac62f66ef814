package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/solcalc/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/project/calculate", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, ModulePage{
		Title:      "Project",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if !strings.HasPrefix(body, `<main id="main">`) {
		t.Fatalf("expected main region wrapper, got %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullPageWithAppShell(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, ModulePage{
		Title:    "Project",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!doctype html>", `id="main"`, `id="fragment-root"`, "<title>Project</title>", `lang="en-US"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageUsesProvidedLocalizer(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, ModulePage{
		Title:     "Projeto",
		Language:  "pt-BR",
		Localizer: webi18n.Printer(language.BrazilianPortuguese),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if cookies := rr.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("expected no language cookie when localizer is provided, got %d", len(cookies))
	}
	if !strings.Contains(rr.Body.String(), `lang="pt-BR"`) {
		t.Fatalf("body missing pt-BR lang attribute: %q", rr.Body.String())
	}
}

func TestWriteModulePageReturnsRenderErrorWithoutWriting(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	boom := errors.New("boom")

	err := WriteModulePage(rr, req, ModulePage{
		Fragment: templ.ComponentFunc(func(context.Context, io.Writer) error { return boom }),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteModulePage() error = %v, want %v", err, boom)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body on render error, got %q", rr.Body.String())
	}
}

func TestWriteModulePageNilWriter(t *testing.T) {
	t.Parallel()

	if err := WriteModulePage(nil, httptest.NewRequest(http.MethodGet, "/", nil), ModulePage{}); err != nil {
		t.Fatalf("WriteModulePage(nil) error = %v", err)
	}
}

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

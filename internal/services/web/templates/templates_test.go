package templates

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/solcalc/internal/services/web/platform/i18n"
	"golang.org/x/net/html"
)

func renderString(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func buttonValues(root *html.Node) []string {
	var values []string
	for _, n := range findAll(root, func(n *html.Node) bool { return n.Data == "button" }) {
		values = append(values, attr(n, "value"))
	}
	return values
}

func linkTargets(root *html.Node) []string {
	var hrefs []string
	for _, n := range findAll(root, func(n *html.Node) bool { return n.Data == "a" }) {
		hrefs = append(hrefs, attr(n, "href"))
	}
	return hrefs
}

func english() Localizer {
	return webi18n.Printer(webi18n.Default())
}

func TestProjectWorkflowGatesControls(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		view        ProjectView
		wantButtons []string
		wantLinks   []string
	}{
		{
			name:        "empty state shows only calculate",
			view:        ProjectView{},
			wantButtons: []string{"calculate"},
		},
		{
			name:        "project id reveals checkout",
			view:        ProjectView{ProjectID: "p1", ShowCheckout: true},
			wantButtons: []string{"calculate", "checkout"},
		},
		{
			name:        "checkout url reveals download",
			view:        ProjectView{ProjectID: "p1", CheckoutURL: "https://pay.example/x", ShowCheckout: true, ShowDownload: true},
			wantButtons: []string{"calculate", "checkout", "download"},
			wantLinks:   []string{"https://pay.example/x"},
		},
		{
			name:        "pdf url reveals pdf link",
			view:        ProjectView{ProjectID: "p1", CheckoutURL: "https://pay.example/x", PDFURL: "/api/download/p1", ShowCheckout: true, ShowDownload: true, ShowPDF: true},
			wantButtons: []string{"calculate", "checkout", "download"},
			wantLinks:   []string{"https://pay.example/x", "/api/download/p1"},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := parse(t, renderString(t, context.Background(), ProjectWorkflow(tc.view, english())))
			if got := buttonValues(doc); strings.Join(got, ",") != strings.Join(tc.wantButtons, ",") {
				t.Fatalf("buttons = %v, want %v", got, tc.wantButtons)
			}
			if got := linkTargets(doc); strings.Join(got, ",") != strings.Join(tc.wantLinks, ",") {
				t.Fatalf("links = %v, want %v", got, tc.wantLinks)
			}
		})
	}
}

func TestProjectWorkflowCarriesStateInEveryForm(t *testing.T) {
	t.Parallel()

	view := ProjectView{ProjectID: "p1", CheckoutURL: "https://pay.example/x", ShowCheckout: true, ShowDownload: true}
	doc := parse(t, renderString(t, context.Background(), ProjectWorkflow(view, english())))
	forms := findAll(doc, func(n *html.Node) bool { return n.Data == "form" })
	if len(forms) != 3 {
		t.Fatalf("forms = %d, want 3", len(forms))
	}
	wantActions := []string{"/project/calculate", "/project/checkout", "/project/download"}
	for i, form := range forms {
		if got := attr(form, "action"); got != wantActions[i] {
			t.Fatalf("form[%d] action = %q, want %q", i, got, wantActions[i])
		}
		if got := attr(form, "method"); got != "post" {
			t.Fatalf("form[%d] method = %q, want post", i, got)
		}
		fields := map[string]string{}
		for _, input := range findAll(form, func(n *html.Node) bool { return n.Data == "input" }) {
			fields[attr(input, "name")] = attr(input, "value")
		}
		if fields[FieldProjectID] != "p1" || fields[FieldCheckoutURL] != "https://pay.example/x" {
			t.Fatalf("form[%d] fields = %#v", i, fields)
		}
		if _, ok := fields[FieldPDFURL]; ok {
			t.Fatalf("form[%d] carries empty pdf field", i)
		}
	}
}

func TestProjectWorkflowEscapesBackendValues(t *testing.T) {
	t.Parallel()

	view := ProjectView{
		ProjectID:    `<script>alert(1)</script>`,
		CheckoutURL:  "javascript:alert(1)",
		ShowCheckout: true,
		ShowDownload: true,
	}
	out := renderString(t, context.Background(), ProjectWorkflow(view, english()))
	if strings.Contains(out, "<script>") {
		t.Fatalf("project id rendered unescaped: %s", out)
	}
	doc := parse(t, out)
	for _, href := range linkTargets(doc) {
		if strings.HasPrefix(href, "javascript:") {
			t.Fatalf("unsafe href rendered: %q", href)
		}
	}
}

func TestProjectWorkflowLocalizesLabels(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(webi18n.Supported()[1])
	out := renderString(t, context.Background(), ProjectWorkflow(ProjectView{}, loc))
	if !strings.Contains(out, "Calcular") {
		t.Fatalf("expected pt-BR label in %q", out)
	}
}

func TestAppLayoutWrapsChildrenInMain(t *testing.T) {
	t.Parallel()

	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="child">hi</p>`)
		return err
	})
	ctx := templ.WithChildren(context.Background(), child)
	doc := parse(t, renderString(t, ctx, AppLayout("Sol-Calc | Solar Project", "en-US", english())))

	mains := findAll(doc, func(n *html.Node) bool { return n.Data == "main" && attr(n, "id") == MainID })
	if len(mains) != 1 {
		t.Fatalf("main regions = %d, want 1", len(mains))
	}
	if children := findAll(mains[0], func(n *html.Node) bool { return attr(n, "id") == "child" }); len(children) != 1 {
		t.Fatalf("child not rendered inside main")
	}
	htmlNodes := findAll(doc, func(n *html.Node) bool { return n.Data == "html" })
	if len(htmlNodes) != 1 || attr(htmlNodes[0], "lang") != "en-US" {
		t.Fatalf("html lang not set")
	}
	titles := findAll(doc, func(n *html.Node) bool { return n.Data == "title" })
	if len(titles) != 1 || titles[0].FirstChild == nil || titles[0].FirstChild.Data != "Sol-Calc | Solar Project" {
		t.Fatalf("title not rendered")
	}
}

func TestLanguageOptionsMarksActive(t *testing.T) {
	t.Parallel()

	options := LanguageOptions("pt-BR", english())
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("active flags = %t,%t, want false,true", options[0].Active, options[1].Active)
	}
	if options[1].URL != "/?lang=pt-BR" {
		t.Fatalf("URL = %q, want %q", options[1].URL, "/?lang=pt-BR")
	}
}

func TestAppErrorStateByStatus(t *testing.T) {
	t.Parallel()

	notFound := renderString(t, context.Background(), AppErrorState(http.StatusNotFound, english()))
	if !strings.Contains(notFound, "Page not found") {
		t.Fatalf("404 state = %q", notFound)
	}
	serverErr := renderString(t, context.Background(), AppErrorState(http.StatusBadGateway, english()))
	if !strings.Contains(serverErr, "Something went wrong") {
		t.Fatalf("5xx state = %q", serverErr)
	}
	if got := AppErrorPageTitle(http.StatusTeapot, nil); got != appErrorPageTitleServerErrKey {
		t.Fatalf("AppErrorPageTitle(nil loc) = %q, want key fallback", got)
	}
}

func TestProjectPageTitle(t *testing.T) {
	t.Parallel()

	if got := ProjectPageTitle(english()); got != "Sol-Calc | Solar Project" {
		t.Fatalf("ProjectPageTitle() = %q", got)
	}
}

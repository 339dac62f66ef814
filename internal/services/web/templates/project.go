package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/solcalc/internal/services/web/routepath"
)

// Form field names carrying the workflow state between requests.
const (
	FieldProjectID   = "project_id"
	FieldCheckoutURL = "checkout_url"
	FieldPDFURL      = "pdf_url"
)

// WorkflowID is the element id of the workflow fragment.
const WorkflowID = "project-workflow"

// ProjectView is the render model for the project workflow.
type ProjectView struct {
	ProjectID    string
	CheckoutURL  string
	PDFURL       string
	ShowCheckout bool
	ShowDownload bool
	ShowPDF      bool
}

// ProjectPageTitle returns the browser title for the workflow page.
func ProjectPageTitle(loc Localizer) string {
	return T(loc, "title.project", T(loc, "app.name"))
}

// ProjectWorkflow renders the workflow controls gated on the current view.
func ProjectWorkflow(view ProjectView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw("<section")
		m.attr("id", WorkflowID)
		m.raw("><h1>")
		m.text(T(loc, "project.heading"))
		m.raw("</h1>")

		actionForm(m, view, routepath.ProjectCalculate, "calculate", T(loc, "project.calculate"))

		if view.ShowCheckout {
			m.raw("<p class=\"project-id\">")
			m.text(T(loc, "project.project_id"))
			m.raw(" <output>")
			m.text(view.ProjectID)
			m.raw("</output></p>")
			actionForm(m, view, routepath.ProjectCheckout, "checkout", T(loc, "project.checkout"))
		}
		if view.ShowDownload {
			m.raw("<p class=\"checkout-url\">")
			m.text(T(loc, "project.checkout_url"))
			m.raw(" ")
			link(m, view.CheckoutURL)
			m.raw("</p>")
			actionForm(m, view, routepath.ProjectDownload, "download", T(loc, "project.download"))
		}
		if view.ShowPDF {
			m.raw("<p class=\"pdf-url\">")
			m.text(T(loc, "project.pdf_url"))
			m.raw(" ")
			link(m, view.PDFURL)
			m.raw("</p>")
		}
		m.raw("</section>")
		return m.err
	})
}

func actionForm(m *markup, view ProjectView, action string, name string, label string) {
	m.raw("<form method=\"post\"")
	m.attr("action", action)
	m.raw(">")
	hidden(m, FieldProjectID, view.ProjectID)
	hidden(m, FieldCheckoutURL, view.CheckoutURL)
	hidden(m, FieldPDFURL, view.PDFURL)
	m.raw("<button type=\"submit\"")
	m.attr("name", "action")
	m.attr("value", name)
	m.raw(">")
	m.text(label)
	m.raw("</button></form>")
}

func hidden(m *markup, name string, value string) {
	if value == "" {
		return
	}
	m.raw("<input type=\"hidden\"")
	m.attr("name", name)
	m.attr("value", value)
	m.raw(">")
}

func link(m *markup, target string) {
	m.raw("<a")
	m.href(target)
	m.raw(">")
	m.text(target)
	m.raw("</a>")
}

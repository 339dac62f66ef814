package project

import (
	"net/http"

	"github.com/louisbranch/solcalc/internal/services/web/modules/project/workflow"
	apperrors "github.com/louisbranch/solcalc/internal/services/web/platform/errors"
	"github.com/louisbranch/solcalc/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/solcalc/internal/services/web/platform/i18n"
	"github.com/louisbranch/solcalc/internal/services/web/platform/pagerender"
	"github.com/louisbranch/solcalc/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/solcalc/internal/services/web/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writeStage(w, r, workflow.Start())
}

func (h handlers) handleCalculate(w http.ResponseWriter, r *http.Request) {
	stage, ok := h.readStage(w, r)
	if !ok {
		return
	}
	h.writeStage(w, r, h.service.calculate(httpx.RequestContext(r), stage))
}

func (h handlers) handleCheckout(w http.ResponseWriter, r *http.Request) {
	stage, ok := h.readStage(w, r)
	if !ok {
		return
	}
	h.writeStage(w, r, h.service.checkout(httpx.RequestContext(r), stage))
}

func (h handlers) handleDownload(w http.ResponseWriter, r *http.Request) {
	stage, ok := h.readStage(w, r)
	if !ok {
		return
	}
	h.writeStage(w, r, h.service.download(stage))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// readStage rebuilds the workflow stage from the hidden fields of the
// submitted form.
func (h handlers) readStage(w http.ResponseWriter, r *http.Request) (workflow.Stage, bool) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "parse workflow form", err))
		return nil, false
	}
	return workflow.FromFields(
		r.PostForm.Get(webtemplates.FieldProjectID),
		r.PostForm.Get(webtemplates.FieldCheckoutURL),
		r.PostForm.Get(webtemplates.FieldPDFURL),
	), true
}

func (h handlers) writeStage(w http.ResponseWriter, r *http.Request, stage workflow.Stage) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	if err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		Title:     webtemplates.ProjectPageTitle(loc),
		Fragment:  webtemplates.ProjectWorkflow(projectView(stage), loc),
		Language:  lang,
		Localizer: loc,
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func projectView(stage workflow.Stage) webtemplates.ProjectView {
	return webtemplates.ProjectView{
		ProjectID:    workflow.ProjectID(stage),
		CheckoutURL:  workflow.CheckoutURL(stage),
		PDFURL:       workflow.PDFURL(stage),
		ShowCheckout: workflow.CanCheckout(stage),
		ShowDownload: workflow.CanDownload(stage),
		ShowPDF:      workflow.HasPDF(stage),
	}
}

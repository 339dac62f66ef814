package project

import (
	"net/http"

	"github.com/louisbranch/solcalc/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectCalculate, h.handleCalculate)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectCheckout, h.handleCheckout)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectDownload, h.handleDownload)
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{rest...}", h.handleNotFound)
}

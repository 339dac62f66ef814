// Package apiproxy forwards browser requests under /api/ to the project backend.
package apiproxy

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/louisbranch/solcalc/internal/services/web/platform/httpx"
)

// New returns a reverse proxy that sends requests to backendBaseURL,
// keeping the request path. Upstream failures produce 502.
func New(backendBaseURL string, transport http.RoundTripper, logger *log.Logger) (http.Handler, error) {
	target, err := url.Parse(strings.TrimSpace(backendBaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, fmt.Errorf("backend base url scheme %q is not http or https", target.Scheme)
	}
	if target.Host == "" {
		return nil, fmt.Errorf("backend base url host is required")
	}
	if logger == nil {
		logger = log.Default()
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		Transport: transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Printf("api proxy failed method=%s path=%s request_id=%s err=%v", r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		},
	}
	return proxy, nil
}

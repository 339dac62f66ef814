// Package routepath stores canonical HTTP paths for web modules and the
// backend API they call.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/"
	Health           = "/up"
	StaticPrefix     = "/static/"
	ProjectPrefix    = "/project/"
	ProjectCalculate = "/project/calculate"
	ProjectCheckout  = "/project/checkout"
	ProjectDownload  = "/project/download"

	APIPrefix         = "/api/"
	APICalculate      = "/api/calculate"
	APICheckout       = "/api/checkout"
	APIDownloadPrefix = "/api/download/"
)

// APIDownload returns the backend PDF download path for a project.
func APIDownload(projectID string) string {
	return APIDownloadPrefix + url.PathEscape(strings.TrimSpace(projectID))
}

// Package workflow models the Calculate -> Checkout -> Download progression of
// a solar project as a closed set of stages.
//
// Each stage carries only the fields that are valid once it is reached, so a
// checkout URL cannot exist without a project id and a PDF URL cannot exist
// without a checkout URL.
package workflow

import (
	"strings"

	"github.com/louisbranch/solcalc/internal/services/web/routepath"
)

// Kind names a workflow stage.
type Kind string

const (
	KindIdle       Kind = "idle"
	KindCalculated Kind = "calculated"
	KindCheckedOut Kind = "checked_out"
	KindDownloaded Kind = "downloaded"
)

// Stage is one of Idle, Calculated, CheckedOut, or Downloaded.
type Stage interface {
	Kind() Kind
	isStage()
}

// Idle is the initial stage: nothing has been calculated yet.
type Idle struct{}

// Calculated holds the project id returned by the calculation step.
type Calculated struct {
	ProjectID string
}

// CheckedOut holds the checkout session URL for a calculated project.
type CheckedOut struct {
	ProjectID   string
	CheckoutURL string
}

// Downloaded holds the synthesized PDF download path.
type Downloaded struct {
	ProjectID   string
	CheckoutURL string
	PDFURL      string
}

func (Idle) Kind() Kind       { return KindIdle }
func (Calculated) Kind() Kind { return KindCalculated }
func (CheckedOut) Kind() Kind { return KindCheckedOut }
func (Downloaded) Kind() Kind { return KindDownloaded }

func (Idle) isStage()       {}
func (Calculated) isStage() {}
func (CheckedOut) isStage() {}
func (Downloaded) isStage() {}

// Start returns the stage a fresh page begins in.
func Start() Stage {
	return Idle{}
}

// ProjectID returns the project id carried by stage, or "".
func ProjectID(stage Stage) string {
	switch s := stage.(type) {
	case Calculated:
		return s.ProjectID
	case CheckedOut:
		return s.ProjectID
	case Downloaded:
		return s.ProjectID
	default:
		return ""
	}
}

// CheckoutURL returns the checkout URL carried by stage, or "".
func CheckoutURL(stage Stage) string {
	switch s := stage.(type) {
	case CheckedOut:
		return s.CheckoutURL
	case Downloaded:
		return s.CheckoutURL
	default:
		return ""
	}
}

// PDFURL returns the PDF download URL carried by stage, or "".
func PDFURL(stage Stage) string {
	if s, ok := stage.(Downloaded); ok {
		return s.PDFURL
	}
	return ""
}

// CanCheckout reports whether the checkout action is available.
func CanCheckout(stage Stage) bool {
	return ProjectID(stage) != ""
}

// CanDownload reports whether the download action is available.
func CanDownload(stage Stage) bool {
	return CheckoutURL(stage) != ""
}

// HasPDF reports whether a PDF link should be offered.
func HasPDF(stage Stage) bool {
	return PDFURL(stage) != ""
}

// AfterCalculate applies a calculation result. Calculation is always
// available and restarts the progression; an empty id leaves nothing to
// check out.
func AfterCalculate(_ Stage, projectID string) Stage {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return Idle{}
	}
	return Calculated{ProjectID: projectID}
}

// AfterCheckout applies a checkout result. Without a project id the stage is
// returned unchanged; an empty URL falls back to Calculated.
func AfterCheckout(stage Stage, checkoutURL string) Stage {
	if stage == nil {
		return Idle{}
	}
	projectID := ProjectID(stage)
	if projectID == "" {
		return stage
	}
	checkoutURL = strings.TrimSpace(checkoutURL)
	if checkoutURL == "" {
		return Calculated{ProjectID: projectID}
	}
	return CheckedOut{ProjectID: projectID, CheckoutURL: checkoutURL}
}

// Download synthesizes the PDF path for a checked-out project. It makes no
// network call. Without a checkout URL the stage is returned unchanged.
func Download(stage Stage) Stage {
	if stage == nil {
		return Idle{}
	}
	if !CanDownload(stage) {
		return stage
	}
	projectID := ProjectID(stage)
	return Downloaded{
		ProjectID:   projectID,
		CheckoutURL: CheckoutURL(stage),
		PDFURL:      routepath.APIDownload(projectID),
	}
}

// FromFields rebuilds a stage from carried field values. Fields that are not
// valid for the implied stage are dropped.
func FromFields(projectID, checkoutURL, pdfURL string) Stage {
	projectID = strings.TrimSpace(projectID)
	checkoutURL = strings.TrimSpace(checkoutURL)
	pdfURL = strings.TrimSpace(pdfURL)
	switch {
	case projectID == "":
		return Idle{}
	case checkoutURL == "":
		return Calculated{ProjectID: projectID}
	case pdfURL == "":
		return CheckedOut{ProjectID: projectID, CheckoutURL: checkoutURL}
	default:
		return Downloaded{ProjectID: projectID, CheckoutURL: checkoutURL, PDFURL: routepath.APIDownload(projectID)}
	}
}

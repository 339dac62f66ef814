package project

import (
	"context"

	apperrors "github.com/louisbranch/solcalc/internal/services/web/platform/errors"
)

// Location is a latitude/longitude pair submitted with a calculation.
type Location struct {
	Lat float64
	Lon float64
}

// CalculateInput is the project description submitted for calculation.
type CalculateInput struct {
	ProjectName string
	Location    Location
	LidarData   string
}

// ProjectGateway performs the backend calls behind the workflow actions.
type ProjectGateway interface {
	// Calculate returns the project id assigned by the backend, possibly "".
	Calculate(context.Context, CalculateInput) (string, error)
	// Checkout returns the checkout URL for projectID, possibly "".
	Checkout(context.Context, string) (string, error)
}

type unavailableGateway struct{}

func (unavailableGateway) Calculate(context.Context, CalculateInput) (string, error) {
	return "", apperrors.E(apperrors.KindUnavailable, "project backend is not configured")
}

func (unavailableGateway) Checkout(context.Context, string) (string, error) {
	return "", apperrors.E(apperrors.KindUnavailable, "project backend is not configured")
}

// IsGatewayHealthy reports whether gateway is configured.
func IsGatewayHealthy(gateway ProjectGateway) bool {
	if gateway == nil {
		return false
	}
	_, unavailable := gateway.(unavailableGateway)
	return !unavailable
}

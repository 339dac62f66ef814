package project

import (
	"context"
	"strings"

	"github.com/louisbranch/solcalc/internal/services/web/integration/projectapi"
)

// BackendClient exposes the project backend operations used by the workflow.
type BackendClient interface {
	Calculate(context.Context, projectapi.CalculateRequest) (projectapi.CalculateResponse, error)
	Checkout(context.Context, string) (projectapi.CheckoutResponse, error)
}

// NewBackendGateway builds the production gateway from the backend client.
func NewBackendGateway(client BackendClient) ProjectGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return backendGateway{client: client}
}

type backendGateway struct {
	client BackendClient
}

func (g backendGateway) Calculate(ctx context.Context, input CalculateInput) (string, error) {
	resp, err := g.client.Calculate(ctx, projectapi.CalculateRequest{
		ProjectName: input.ProjectName,
		Location:    projectapi.Location{Lat: input.Location.Lat, Lon: input.Location.Lon},
		LidarData:   input.LidarData,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.ProjectID), nil
}

func (g backendGateway) Checkout(ctx context.Context, projectID string) (string, error) {
	resp, err := g.client.Checkout(ctx, projectID)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.CheckoutURL), nil
}

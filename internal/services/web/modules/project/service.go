package project

import (
	"context"
	"log"

	"github.com/louisbranch/solcalc/internal/services/web/modules/project/workflow"
)

// DefaultProject is the fixed project submitted by the Calculate action.
var DefaultProject = CalculateInput{
	ProjectName: "Ground Mount Project 1",
	Location:    Location{Lat: 35.79, Lon: -78.78},
	LidarData:   "dummy_lidar_data",
}

type service struct {
	gateway ProjectGateway
	logger  *log.Logger
}

func newService(gateway ProjectGateway, logger *log.Logger) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return service{gateway: gateway, logger: logger}
}

// calculate submits the default project. A failed call is logged and the
// current stage is kept.
func (s service) calculate(ctx context.Context, stage workflow.Stage) workflow.Stage {
	projectID, err := s.gateway.Calculate(ctx, DefaultProject)
	if err != nil {
		s.logger.Printf("project action=calculate err=%v", err)
		return stage
	}
	return workflow.AfterCalculate(stage, projectID)
}

func (s service) checkout(ctx context.Context, stage workflow.Stage) workflow.Stage {
	if !workflow.CanCheckout(stage) {
		return stage
	}
	projectID := workflow.ProjectID(stage)
	checkoutURL, err := s.gateway.Checkout(ctx, projectID)
	if err != nil {
		s.logger.Printf("project action=checkout project_id=%s err=%v", projectID, err)
		return stage
	}
	return workflow.AfterCheckout(stage, checkoutURL)
}

func (s service) download(stage workflow.Stage) workflow.Stage {
	return workflow.Download(stage)
}

package orchestrator

import (
	"context"
	"io"

	"github.com/elC0mpa/eni-doctor/model"
	svc "github.com/elC0mpa/eni-doctor/service"
	awsec2 "github.com/elC0mpa/eni-doctor/service/aws/ec2"
	"github.com/go-logr/logr"
)

type service struct {
	identityService svc.IdentityService
	ec2Service      awsec2.EC2Service
	region          string
	out             io.Writer
	logger          logr.Logger
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
}

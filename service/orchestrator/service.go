package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/elC0mpa/eni-doctor/model"
	svc "github.com/elC0mpa/eni-doctor/service"
	awsec2 "github.com/elC0mpa/eni-doctor/service/aws/ec2"
	"github.com/elC0mpa/eni-doctor/service/eni"
	"github.com/elC0mpa/eni-doctor/utils"
	"github.com/go-logr/logr"
)

const unknownAccount = "unknown"

func NewService(identityService svc.IdentityService, ec2Service awsec2.EC2Service, region string, out io.Writer, logger logr.Logger) *service {
	return &service{
		identityService: identityService,
		ec2Service:      ec2Service,
		region:          region,
		out:             out,
		logger:          logger.WithName("orchestrator"),
	}
}

// Orchestrate lists every ENI, prints the status summary and, with
// flags.Delete, deletes the available ones. Listing failures end the run
// straight away; delete failures are reported per ENI and then returned.
func (s *service) Orchestrate(ctx context.Context, flags model.Flags) error {
	defer utils.StopSpinner()

	enis, err := s.ec2Service.ListNetworkInterfaces(ctx)
	if err != nil {
		return fmt.Errorf("listing network interfaces: %w", err)
	}
	s.logger.V(1).Info("Listed network interfaces", "count", len(enis))

	counts := eni.CountByStatus(enis)
	accountID := s.accountID(ctx)

	utils.StopSpinner()

	utils.DrawStatusTable(s.out, accountID, s.region, counts)
	if flags.Chart {
		utils.DrawStatusChart(s.out, counts)
	}

	if !flags.Delete {
		return nil
	}

	report, err := eni.DeleteAvailable(ctx, s.ec2Service, enis, s.logger)
	utils.DrawDeletionReport(s.out, report)
	if err != nil {
		return fmt.Errorf("deleting available enis: %w", err)
	}

	return nil
}

// accountID is best effort: the header is cosmetic and STS may be denied
func (s *service) accountID(ctx context.Context) string {
	info, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		s.logger.Info("Could not resolve account ID", "error", err.Error())
		return unknownAccount
	}
	return info.AccountID
}

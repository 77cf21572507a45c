package awsec2

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/eni-doctor/model"
	"github.com/go-logr/logr"
)

const pageSize = 1000

func NewService(awsconfig aws.Config, logger logr.Logger) *service {
	return NewServiceWithClient(ec2.NewFromConfig(awsconfig), logger)
}

func NewServiceWithClient(client API, logger logr.Logger) *service {
	return &service{
		client: client,
		logger: logger.WithName("ec2"),
	}
}

// ListNetworkInterfaces walks every DescribeNetworkInterfaces page. A failed
// page aborts the listing; nothing partial is returned.
func (s *service) ListNetworkInterfaces(ctx context.Context) ([]model.NetworkInterface, error) {
	paginator := ec2.NewDescribeNetworkInterfacesPaginator(s.client, &ec2.DescribeNetworkInterfacesInput{
		MaxResults: aws.Int32(pageSize),
	})

	var enis []model.NetworkInterface
	page := 0
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &model.APIError{Op: "DescribeNetworkInterfaces", Err: err}
		}

		page++
		s.logger.V(1).Info("Received network interfaces page", "page", page, "count", len(output.NetworkInterfaces))

		for _, networkInterface := range output.NetworkInterfaces {
			enis = append(enis, s.toModel(networkInterface))
		}
	}

	return enis, nil
}

func (s *service) DeleteNetworkInterface(ctx context.Context, id string) error {
	_, err := s.client.DeleteNetworkInterface(ctx, &ec2.DeleteNetworkInterfaceInput{
		NetworkInterfaceId: aws.String(id),
	})
	if err != nil {
		return &model.APIError{Op: "DeleteNetworkInterface", ID: id, Err: err}
	}

	return nil
}

func (s *service) toModel(networkInterface types.NetworkInterface) model.NetworkInterface {
	interfaceType := networkInterface.InterfaceType
	if interfaceType == "" || interfaceType == types.NetworkInterfaceTypeInterface {
		interfaceType = s.getResourceTypeFromDescription(aws.ToString(networkInterface.Description))
	}

	return model.NetworkInterface{
		ID:               aws.ToString(networkInterface.NetworkInterfaceId),
		Status:           networkInterface.Status,
		InterfaceType:    string(interfaceType),
		Description:      aws.ToString(networkInterface.Description),
		SubnetID:         aws.ToString(networkInterface.SubnetId),
		VpcID:            aws.ToString(networkInterface.VpcId),
		AvailabilityZone: aws.ToString(networkInterface.AvailabilityZone),
		PrivateIP:        aws.ToString(networkInterface.PrivateIpAddress),
	}
}

// getResourceTypeFromDescription guesses the owning service of a plain
// "interface" ENI from the description AWS writes on it.
func (s *service) getResourceTypeFromDescription(description string) types.NetworkInterfaceType {
	desc := strings.ToLower(description)

	switch {
	case strings.Contains(desc, "elb app/"):
		return types.NetworkInterfaceTypeLoadBalancer
	case strings.Contains(desc, "elb net/"):
		return types.NetworkInterfaceTypeNetworkLoadBalancer
	case strings.Contains(desc, "nat gateway"), strings.Contains(desc, "nat-gateway"):
		return types.NetworkInterfaceTypeNatGateway
	case strings.Contains(desc, "globalaccelerator"):
		return types.NetworkInterfaceTypeGlobalAcceleratorManaged
	case strings.Contains(desc, "vpc endpoint"), strings.Contains(desc, "vpce-"):
		return types.NetworkInterfaceTypeVpcEndpoint
	case strings.Contains(desc, "transit gateway"), strings.Contains(desc, "tgw-"):
		return types.NetworkInterfaceTypeTransitGateway
	case strings.Contains(desc, "aws lambda"):
		return types.NetworkInterfaceTypeLambda
	case strings.Contains(desc, "api gateway"):
		return types.NetworkInterfaceTypeApiGatewayManaged
	case strings.Contains(desc, "efs mount target"):
		return types.NetworkInterfaceType("efs")
	case strings.Contains(desc, "rds"):
		return types.NetworkInterfaceType("rds_database")
	case strings.Contains(desc, "eks"):
		return types.NetworkInterfaceType("eks")
	case strings.Contains(desc, "ecs"):
		return types.NetworkInterfaceType("ecs_task")
	}

	return types.NetworkInterfaceTypeInterface
}

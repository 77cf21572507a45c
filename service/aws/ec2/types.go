package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/elC0mpa/eni-doctor/model"
	"github.com/go-logr/logr"
)

// API is the part of the EC2 client the service calls
type API interface {
	ec2.DescribeNetworkInterfacesAPIClient
	DeleteNetworkInterface(ctx context.Context, params *ec2.DeleteNetworkInterfaceInput, optFns ...func(*ec2.Options)) (*ec2.DeleteNetworkInterfaceOutput, error)
}

type service struct {
	client API
	logger logr.Logger
}

type EC2Service interface {
	ListNetworkInterfaces(ctx context.Context) ([]model.NetworkInterface, error)
	DeleteNetworkInterface(ctx context.Context, id string) error
}

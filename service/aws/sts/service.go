package awssts

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/elC0mpa/eni-doctor/model"
)

func NewService(awsconfig aws.Config) *service {
	return NewServiceWithClient(sts.NewFromConfig(awsconfig))
}

func NewServiceWithClient(client API) *service {
	return &service{
		client: client,
	}
}

func (s *service) GetCallerIdentity(ctx context.Context) (*sts.GetCallerIdentityOutput, error) {
	input := &sts.GetCallerIdentityInput{}

	output, err := s.client.GetCallerIdentity(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("calling GetCallerIdentity: %w", err)
	}
	return output, nil
}

func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	output, err := s.GetCallerIdentity(ctx)
	if err != nil {
		return nil, err
	}

	return &model.AccountInfo{
		Provider:    "aws",
		AccountID:   aws.ToString(output.Account),
		AccountName: aws.ToString(output.Arn),
	}, nil
}

package response

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/eni-doctor/model"
)

func TestConvertAccountInfo(t *testing.T) {
	assert.Nil(t, ConvertAccountInfo(nil))

	got := ConvertAccountInfo(&model.AccountInfo{Provider: "aws", AccountID: "1", AccountName: "arn"})
	assert.Equal(t, &AccountInfo{Provider: "aws", AccountID: "1", AccountName: "arn"}, got)
}

func TestConvertNetworkInterfaces(t *testing.T) {
	got := ConvertNetworkInterfaces([]model.NetworkInterface{
		{ID: "eni-1", Status: types.NetworkInterfaceStatusInUse, InterfaceType: "lambda", SubnetID: "subnet-1"},
		{ID: "eni-2"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "in-use", got[0].Status)
	assert.Equal(t, "lambda", got[0].InterfaceType)
	assert.Equal(t, "subnet-1", got[0].SubnetID)
	assert.Equal(t, "none", got[1].Status)
}

func TestConvertStatusSummary(t *testing.T) {
	got := ConvertStatusSummary("123", "us-east-1", model.StatusCounts{
		model.StatusInUse:     1,
		model.StatusAvailable: 2,
	})

	assert.Equal(t, &StatusSummary{
		AccountID: "123",
		Region:    "us-east-1",
		Statuses: []StatusCount{
			{Status: "available", Count: 2},
			{Status: "in-use", Count: 1},
		},
		Total: 3,
	}, got)
}

func TestConvertDeletionReport(t *testing.T) {
	apiErr := &model.APIError{
		Op:  "DeleteNetworkInterface",
		ID:  "eni-b",
		Err: &smithy.GenericAPIError{Code: "InvalidNetworkInterfaceID.NotFound", Message: "gone"},
	}
	report := &model.DeletionReport{
		Results: []model.DeletionResult{{ID: "eni-a"}, {ID: "eni-b", Err: apiErr}},
		Skipped: 1,
	}

	got := ConvertDeletionReport(report, errors.New("aggregate"))

	assert.False(t, got.Success)
	assert.Equal(t, []string{"eni-a"}, got.Deleted)
	require.Len(t, got.Failed, 1)
	assert.Equal(t, "eni-b", got.Failed[0].ID)
	assert.Equal(t, "InvalidNetworkInterfaceID.NotFound", got.Failed[0].Code)
	assert.Equal(t, 1, got.Skipped)
}

func TestConvertDeletionReport_Empty(t *testing.T) {
	got := ConvertDeletionReport(&model.DeletionReport{}, nil)

	assert.True(t, got.Success)
	assert.Empty(t, got.Deleted)
	assert.NotNil(t, got.Deleted)
	assert.Empty(t, got.Failed)
}

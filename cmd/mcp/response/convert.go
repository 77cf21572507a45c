package response

import (
	"errors"

	"github.com/elC0mpa/eni-doctor/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertNetworkInterfaces converts ENIs, labelling missing statuses "none"
func ConvertNetworkInterfaces(enis []model.NetworkInterface) []NetworkInterface {
	result := make([]NetworkInterface, 0, len(enis))
	for _, eni := range enis {
		status := string(eni.Status)
		if status == "" {
			status = string(model.StatusNone)
		}

		result = append(result, NetworkInterface{
			ID:               eni.ID,
			Status:           status,
			InterfaceType:    eni.InterfaceType,
			Description:      eni.Description,
			SubnetID:         eni.SubnetID,
			VpcID:            eni.VpcID,
			AvailabilityZone: eni.AvailabilityZone,
			PrivateIP:        eni.PrivateIP,
		})
	}
	return result
}

// ConvertStatusSummary converts counts, ordered as the CLI table orders them
func ConvertStatusSummary(accountID, region string, counts model.StatusCounts) *StatusSummary {
	statuses := make([]StatusCount, 0, len(counts))
	for _, key := range counts.Keys() {
		statuses = append(statuses, StatusCount{
			Status: string(key),
			Count:  counts[key],
		})
	}

	return &StatusSummary{
		AccountID: accountID,
		Region:    region,
		Statuses:  statuses,
		Total:     counts.Total(),
	}
}

// ConvertDeletionReport converts a deletion report. err is the aggregate
// error returned alongside it.
func ConvertDeletionReport(report *model.DeletionReport, err error) *DeletionReport {
	resp := &DeletionReport{
		Success: err == nil,
		Deleted: []string{},
		Failed:  []DeletionFailure{},
	}
	if report == nil {
		return resp
	}

	if deleted := report.Deleted(); deleted != nil {
		resp.Deleted = deleted
	}

	for _, failed := range report.Failed() {
		failure := DeletionFailure{
			ID:    failed.ID,
			Error: failed.Err.Error(),
		}

		var apiErr *model.APIError
		if errors.As(failed.Err, &apiErr) {
			failure.Code = apiErr.Code()
		}

		resp.Failed = append(resp.Failed, failure)
	}

	resp.Skipped = report.Skipped
	return resp
}

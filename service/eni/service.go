// Package eni summarizes ENIs by status and deletes the available ones.
package eni

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/go-logr/logr"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/elC0mpa/eni-doctor/model"
)

// Classify maps an EC2 status onto a StatusKey. Values added by AWS after
// this was written come back as StatusUnknown.
func Classify(status types.NetworkInterfaceStatus) model.StatusKey {
	switch status {
	case "":
		return model.StatusNone
	case types.NetworkInterfaceStatusAssociated:
		return model.StatusAssociated
	case types.NetworkInterfaceStatusAttaching:
		return model.StatusAttaching
	case types.NetworkInterfaceStatusAvailable:
		return model.StatusAvailable
	case types.NetworkInterfaceStatusDetaching:
		return model.StatusDetaching
	case types.NetworkInterfaceStatusInUse:
		return model.StatusInUse
	default:
		return model.StatusUnknown
	}
}

// CountByStatus counts the interfaces per StatusKey
func CountByStatus(enis []model.NetworkInterface) model.StatusCounts {
	counts := make(model.StatusCounts)
	for _, eni := range enis {
		counts[Classify(eni.Status)]++
	}
	return counts
}

// DeleteAvailable deletes every available ENI concurrently and waits for all
// of them. One failure never stops the others. The returned error combines
// every failed delete and every available ENI skipped for lacking an ID.
func DeleteAvailable(ctx context.Context, deleter Deleter, enis []model.NetworkInterface, log logr.Logger) (*model.DeletionReport, error) {
	report := &model.DeletionReport{}

	var errs []error
	var ids []string
	for _, eni := range enis {
		if eni.Status != types.NetworkInterfaceStatusAvailable {
			continue
		}

		if eni.ID == "" {
			err := fmt.Errorf("subnet %q, description %q: %w", eni.SubnetID, eni.Description, model.ErrMissingIdentifier)
			log.Error(err, "Ignoring available ENI")
			report.Skipped++
			errs = append(errs, err)
			continue
		}

		ids = append(ids, eni.ID)
	}

	log.V(1).Info("Deleting available ENIs", "count", len(ids))

	// each goroutine owns one slot
	report.Results = make([]model.DeletionResult, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			err := deleter.DeleteNetworkInterface(ctx, id)
			if err != nil {
				log.Error(err, "Delete failed", "eniID", id)
			} else {
				log.V(1).Info("Deleted ENI", "eniID", id)
			}
			report.Results[i] = model.DeletionResult{ID: id, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	for _, result := range report.Results {
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
	}

	return report, multierr.Combine(errs...)
}

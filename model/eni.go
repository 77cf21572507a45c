package model

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// NetworkInterface is the subset of an ENI record the doctor works with.
// An empty ID or Status means the API did not return that field.
type NetworkInterface struct {
	ID               string
	Status           types.NetworkInterfaceStatus
	InterfaceType    string
	Description      string
	SubnetID         string
	VpcID            string
	AvailabilityZone string
	PrivateIP        string
}

// StatusKey classifies an ENI status for aggregation
type StatusKey string

const (
	StatusAssociated StatusKey = "associated"
	StatusAttaching  StatusKey = "attaching"
	StatusAvailable  StatusKey = "available"
	StatusDetaching  StatusKey = "detaching"
	StatusInUse      StatusKey = "in-use"
	StatusUnknown    StatusKey = "unknown"
	StatusNone       StatusKey = "none"
)

// StatusCounts maps each observed status to the number of ENIs in it
type StatusCounts map[StatusKey]int

// Total returns the number of interfaces counted
func (c StatusCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Keys returns the observed statuses ordered by count descending, then name
func (c StatusCounts) Keys() []StatusKey {
	keys := make([]StatusKey, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if c[keys[i]] != c[keys[j]] {
			return c[keys[i]] > c[keys[j]]
		}
		return keys[i] < keys[j]
	})

	return keys
}

// DeletionResult is the outcome of one delete attempt
type DeletionResult struct {
	ID  string
	Err error
}

// DeletionReport collects every outcome of a delete run
type DeletionReport struct {
	// Results holds one entry per attempted delete, in candidate order
	Results []DeletionResult
	// Skipped counts available ENIs that had no usable identifier
	Skipped int
}

// Deleted returns the IDs that were deleted
func (r *DeletionReport) Deleted() []string {
	var ids []string
	for _, result := range r.Results {
		if result.Err == nil {
			ids = append(ids, result.ID)
		}
	}
	return ids
}

// Failed returns the attempts that ended in an error
func (r *DeletionReport) Failed() []DeletionResult {
	var failed []DeletionResult
	for _, result := range r.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

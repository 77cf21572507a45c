package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCounts_TotalAndKeys(t *testing.T) {
	counts := StatusCounts{
		StatusInUse:     3,
		StatusAvailable: 3,
		StatusNone:      1,
		StatusAttaching: 5,
	}

	assert.Equal(t, 12, counts.Total())
	assert.Equal(t, []StatusKey{StatusAttaching, StatusAvailable, StatusInUse, StatusNone}, counts.Keys())
}

func TestStatusCounts_Empty(t *testing.T) {
	counts := StatusCounts{}

	assert.Zero(t, counts.Total())
	assert.Empty(t, counts.Keys())
}

func TestDeletionReport(t *testing.T) {
	boom := errors.New("boom")
	report := DeletionReport{
		Results: []DeletionResult{
			{ID: "eni-a"},
			{ID: "eni-b", Err: boom},
			{ID: "eni-c"},
		},
		Skipped: 1,
	}

	assert.Equal(t, []string{"eni-a", "eni-c"}, report.Deleted())
	assert.Equal(t, []DeletionResult{{ID: "eni-b", Err: boom}}, report.Failed())
}

package utils

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"

	"github.com/elC0mpa/eni-doctor/model"
)

func TestMain(m *testing.M) {
	text.DisableColors()
	os.Exit(m.Run())
}

func TestDrawStatusTable_TotalRowWithSeveralStatuses(t *testing.T) {
	var buf bytes.Buffer

	DrawStatusTable(&buf, "123456789012", "us-east-1", model.StatusCounts{
		model.StatusInUse:     1,
		model.StatusAvailable: 2,
	})

	out := buf.String()
	assert.Contains(t, out, "123456789012")
	assert.Contains(t, out, "us-east-1")
	assert.Contains(t, out, "available")
	assert.Contains(t, out, "in-use")
	assert.Contains(t, out, "total")
	assert.Less(t, strings.Index(out, "available"), strings.Index(out, "in-use"))
}

func TestDrawStatusTable_NoTotalRowWithOneStatus(t *testing.T) {
	var buf bytes.Buffer

	DrawStatusTable(&buf, "123456789012", "us-east-1", model.StatusCounts{model.StatusInUse: 4})

	assert.Contains(t, buf.String(), "in-use")
	assert.NotContains(t, buf.String(), "total")
}

func TestStatusRows(t *testing.T) {
	rows := statusRows(model.StatusCounts{
		model.StatusNone:    1,
		model.StatusUnknown: 3,
	})

	assert.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0][0])
	assert.Equal(t, "unknown", rows[0][1])
	assert.Equal(t, 1, rows[1][0])
	assert.Equal(t, "none", rows[1][1])
}

func TestDrawDeletionReport(t *testing.T) {
	var buf bytes.Buffer

	DrawDeletionReport(&buf, &model.DeletionReport{
		Results: []model.DeletionResult{
			{ID: "eni-a"},
			{ID: "eni-b", Err: errors.New("DeleteNetworkInterface eni-b: throttled")},
		},
		Skipped: 1,
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Deleted eni-a",
		"Failed to delete eni-b: DeleteNetworkInterface eni-b: throttled",
		"Skipped 1 available ENI(s) with no network interface ID",
	}, lines)
}

func TestDrawDeletionReport_Nothing(t *testing.T) {
	var buf bytes.Buffer

	DrawDeletionReport(&buf, &model.DeletionReport{})

	assert.Equal(t, "No available ENIs to delete\n", buf.String())
}

func TestDrawStatusChart(t *testing.T) {
	var buf bytes.Buffer

	DrawStatusChart(&buf, model.StatusCounts{model.StatusInUse: 4, model.StatusAvailable: 1})

	assert.NotEmpty(t, buf.String())

	buf.Reset()
	DrawStatusChart(&buf, model.StatusCounts{})
	assert.Empty(t, buf.String())
}

func TestStopSpinnerWithoutStart(t *testing.T) {
	assert.NotPanics(t, StopSpinner)
}

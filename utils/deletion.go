package utils

import (
	"fmt"
	"io"

	"github.com/elC0mpa/eni-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawDeletionReport prints one line per attempted delete and a line for the
// available ENIs that were skipped.
func DrawDeletionReport(w io.Writer, report *model.DeletionReport) {
	for _, result := range report.Results {
		if result.Err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", text.FgRed.Sprint("Failed to delete"), result.ID, result.Err)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", text.FgGreen.Sprint("Deleted"), result.ID)
	}

	if report.Skipped > 0 {
		fmt.Fprintf(w, "%s %d available ENI(s) with no network interface ID\n", text.FgHiYellow.Sprint("Skipped"), report.Skipped)
	}

	if len(report.Results) == 0 && report.Skipped == 0 {
		fmt.Fprintln(w, text.FgHiBlue.Sprint("No available ENIs to delete"))
	}
}

package utils

import (
	"fmt"
	"io"

	"github.com/elC0mpa/eni-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var statusColors = map[model.StatusKey]text.Colors{
	model.StatusAvailable:  {text.FgHiYellow},
	model.StatusInUse:      {text.FgGreen},
	model.StatusAssociated: {text.FgGreen},
	model.StatusAttaching:  {text.FgCyan},
	model.StatusDetaching:  {text.FgCyan},
	model.StatusUnknown:    {text.FgRed},
	model.StatusNone:       {text.FgRed},
}

// DrawStatusTable prints the count/status table, with a total row when more
// than one status was seen.
func DrawStatusTable(w io.Writer, accountID, region string, counts model.StatusCounts) {
	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" 🩺  ENI DOCTOR"))
	fmt.Fprintf(w, " Account ID: %s  Region: %s\n", text.FgBlue.Sprint(accountID), text.FgBlue.Sprint(region))

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Count", "Status"})
	tw.AppendRows(statusRows(counts))

	if len(counts) > 1 {
		tw.AppendSeparator()
		tw.AppendRow(table.Row{counts.Total(), text.FgHiWhite.Sprint("total")})
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	fmt.Fprintln(w, tw.Render())
}

func statusRows(counts model.StatusCounts) []table.Row {
	rows := make([]table.Row, 0, len(counts))
	for _, key := range counts.Keys() {
		rows = append(rows, table.Row{counts[key], statusColors[key].Sprint(string(key))})
	}
	return rows
}

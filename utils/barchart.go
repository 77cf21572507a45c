package utils

import (
	"fmt"
	"io"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/eni-doctor/model"
)

var chartColors = map[model.StatusKey]string{
	model.StatusAvailable:  "#fee08b",
	model.StatusInUse:      "#1a9850",
	model.StatusAssociated: "#66c2a5",
	model.StatusAttaching:  "#abdda4",
	model.StatusDetaching:  "#f46d43",
	model.StatusUnknown:    "#d73027",
	model.StatusNone:       "#d73027",
}

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawStatusChart prints a bar per observed status
func DrawStatusChart(w io.Writer, counts model.StatusCounts) {
	if len(counts) == 0 {
		return
	}

	bc := barchart.New(chartWidth(len(counts)), 15)

	for _, key := range counts.Keys() {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %d", key, counts[key]),
			Values: []barchart.BarValue{
				{
					Name:  string(key),
					Value: float64(counts[key]),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(chartColors[key])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Fprintln(w, defaultStyle.Render(bc.View()))
}

func chartWidth(bars int) int {
	return bars * 18
}

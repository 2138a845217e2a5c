// Package tui provides the Bubble Tea word-finder interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderGrid lays the filtered words out as badges, as many per row as
// fit in width. Common words get the brighter badge style.
func renderGrid(words []string, isCommon func(string) bool, width int) string {
	if len(words) == 0 {
		return emptyStyle.Render("No words match.")
	}
	var lines []string
	var row []string
	rowWidth := 0
	for _, word := range words {
		label := " " + strings.ToUpper(word) + " "
		labelWidth := runewidth.StringWidth(label)
		if rowWidth > 0 && rowWidth+1+labelWidth > width {
			lines = append(lines, strings.Join(row, " "))
			row = nil
			rowWidth = 0
		}
		style := rareBadgeStyle
		if isCommon(word) {
			style = commonBadgeStyle
		}
		row = append(row, style.Render(label))
		if rowWidth > 0 {
			rowWidth++
		}
		rowWidth += labelWidth
	}
	lines = append(lines, strings.Join(row, " "))
	return strings.Join(lines, "\n")
}

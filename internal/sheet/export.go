package sheet

import "strings"

// ExportSheetText renders a sheet as plain text, one grid row per line.
func ExportSheetText(s Sheet) string {
	lines := []string{"# " + s.Player}
	for _, row := range s.Grid {
		lines = append(lines, strings.Join(row[:], " | "))
	}
	return strings.Join(lines, "\n")
}

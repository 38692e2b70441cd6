package render

import (
	"fmt"
	"strings"

	"github.com/network-cards/network-cards/domain/card"
)

// Text renders the table as plain text: right-aligned field labels with
// inline ^n footnote marks, one value column per card, and the footnote
// legend below a blank line.
func Text(t card.Table) string {
	marks, legend := assignMarks(t.Rows, 1, func(num int, _ bool, _ string) string {
		return fmt.Sprintf("^%d", num)
	})

	labels := make([]string, len(t.Rows))
	labelWidth := 0
	for i, row := range t.Rows {
		labels[i] = row.Field + strings.Join(marks[i], ",")
		if len(labels[i]) > labelWidth {
			labelWidth = len(labels[i])
		}
	}

	colWidths := make([]int, t.Columns)
	for _, row := range t.Rows {
		for j, v := range row.Values {
			if len(v) > colWidths[j] {
				colWidths[j] = len(v)
			}
		}
	}

	var b strings.Builder
	for i, row := range t.Rows {
		line := fmt.Sprintf("%*s", labelWidth, labels[i])
		for j, v := range row.Values {
			line += fmt.Sprintf("  %-*s", colWidths[j], v)
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}

	if len(legend) > 0 {
		b.WriteByte('\n')
		for _, l := range legend {
			fmt.Fprintf(&b, "^%d: %s\n", l.Num, l.Text)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

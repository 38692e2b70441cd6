package render

import (
	"fmt"
	"strings"

	"github.com/network-cards/network-cards/domain/card"
)

// texReplacer escapes the markup-reserved characters. A single replacement
// pass guarantees multi-character substitutions are never re-escaped.
var texReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\^{}`,
	"<", `\textless{}`,
	">", `\textgreater{}`,
)

// TexEscape escapes text so it appears literally in LaTeX output.
func TexEscape(text string) string {
	return texReplacer.Replace(text)
}

// LatexOptions configures the LaTeX renderer.
type LatexOptions struct {
	// ColumnWidthCM is the width of each value column in centimeters. Zero
	// means natural width for a single-card table and 2.5cm per column for
	// a multicard.
	ColumnWidthCM float64
}

// Latex renders the table as a tabular fragment, meant for inclusion inside
// a caller-supplied table environment. Panels are separated with horizontal
// rules at the cumulative row offsets, first-occurrence footnotes become
// \tablefootnote definitions and repeats \textsuperscript cross-references,
// and every label and value is escaped.
func Latex(t card.Table, opts *LatexOptions) string {
	if opts == nil {
		opts = &LatexOptions{}
	}

	marks, _ := assignMarks(t.Rows, 0, func(num int, first bool, note string) string {
		if first {
			return fmt.Sprintf(`\tablefootnote{\label{foot%d}%s}`, num, note)
		}
		return fmt.Sprintf(`\textsuperscript{\ref{foot%d}}`, num)
	})

	lines := []string{
		fmt.Sprintf(`\begin{tabular}{%s}`, columnFormat(t, opts)),
		`\toprule`,
	}

	sizes := t.PanelSizes()
	boundaries := map[int]int{}
	boundaries[sizes[card.Overall]]++
	boundaries[sizes[card.Overall]+sizes[card.Structure]]++

	for i := 0; i <= len(t.Rows); i++ {
		for n := 0; n < boundaries[i]; n++ {
			lines = append(lines, `\midrule`)
		}
		if i == len(t.Rows) {
			break
		}
		row := t.Rows[i]
		cells := []string{TexEscape(row.Field) + strings.Join(marks[i], `\textsuperscript{,}`)}
		for _, v := range row.Values {
			cells = append(cells, TexEscape(v))
		}
		lines = append(lines, strings.Join(cells, " & ")+` \\`)
	}

	lines = append(lines,
		`\bottomrule`,
		`\end{tabular}`,
		`% footnotes require tablefootnote package (put \usepackage{tablefootnote} in preamble)`,
	)
	if t.Columns > 1 {
		lines = append(lines, `% put \usepackage{array} in preamble`)
	}
	return strings.Join(lines, "\n")
}

func columnFormat(t card.Table, opts *LatexOptions) string {
	if t.Columns == 1 {
		if opts.ColumnWidthCM > 0 {
			return fmt.Sprintf("lp{%gcm}", opts.ColumnWidthCM)
		}
		return "ll"
	}
	width := opts.ColumnWidthCM
	if width == 0 {
		width = 2.5
	}
	col := fmt.Sprintf(`>{\raggedright\arraybackslash}p{%gcm}`, width)
	return "l" + strings.Repeat(col, t.Columns)
}

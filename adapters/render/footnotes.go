// Package render turns projected card tables into their output formats:
// plain text, LaTeX, and Excel (through excelize). All three share one
// footnote numbering pass; only mark glyphs and legend layout differ.
package render

import (
	"github.com/network-cards/network-cards/domain/card"
)

// registry assigns sequence numbers to footnote texts within one render:
// the first row whose text has not been seen takes the next number, later
// rows referencing the same text reuse it. The registry is render-scoped
// and rebuilt on every call, so renders of different cards never interfere.
type registry struct {
	base  int
	nums  map[string]int
	order []string
}

func newRegistry(base int) *registry {
	return &registry{base: base, nums: make(map[string]int)}
}

// assign returns the number for text, allocating the next one on first
// occurrence.
func (r *registry) assign(text string) (num int, first bool) {
	if n, ok := r.nums[text]; ok {
		return n, false
	}
	n := r.base + len(r.nums)
	r.nums[text] = n
	r.order = append(r.order, text)
	return n, true
}

// LegendEntry pairs a footnote number with its text, in first-seen order.
type LegendEntry struct {
	Num  int
	Text string
}

func (r *registry) legend() []LegendEntry {
	entries := make([]LegendEntry, 0, len(r.order))
	for _, text := range r.order {
		entries = append(entries, LegendEntry{Num: r.nums[text], Text: text})
	}
	return entries
}

// assignMarks scans rows top to bottom, left to right within each row's
// footnote list, and renders each footnote through mark. It returns one mark
// slice per row plus the de-duplicated legend.
func assignMarks(rows []card.TableRow, base int, mark func(num int, first bool, note string) string) ([][]string, []LegendEntry) {
	reg := newRegistry(base)
	marks := make([][]string, len(rows))
	for i, row := range rows {
		for _, note := range row.Notes {
			num, first := reg.assign(note)
			marks[i] = append(marks[i], mark(num, first, note))
		}
	}
	return marks, reg.legend()
}

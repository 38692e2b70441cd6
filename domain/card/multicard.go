package card

import (
	"fmt"
	"strings"

	"github.com/network-cards/network-cards/domain/core"
)

// MultiCard is an aligned side-by-side combination of several cards. Rows are
// the outer join of the cards' fields on (panel, field): panels keep their
// fixed order, fields within a panel appear in first-appearance order across
// the cards in the order they were supplied, and a field missing from a card
// shows an explicit blank in that card's column. Footnotes for a row are the
// union (by exact text, first seen first) of every card's footnotes for that
// field.
type MultiCard struct {
	columns int
	rows    []TableRow
}

// NewMultiCard merges cards into a multicard. The merge is computed once, at
// construction; later mutations of the source cards are not reflected.
func NewMultiCard(cards ...*Card) *MultiCard {
	m := &MultiCard{columns: len(cards)}

	for _, kind := range PanelKinds() {
		index := make(map[string]int)
		var panelRows []TableRow

		for i, c := range cards {
			for _, field := range c.panels[kind].order {
				e := c.panels[kind].entries[field]
				at, ok := index[field]
				if !ok {
					at = len(panelRows)
					index[field] = at
					panelRows = append(panelRows, TableRow{
						Panel:  kind,
						Field:  field,
						Values: blankValues(len(cards)),
					})
				}
				panelRows[at].Values[i] = e.Value
				panelRows[at].Notes = mergeNotes(panelRows[at].Notes, e.Notes)
			}
		}
		m.rows = append(m.rows, panelRows...)
	}
	return m
}

func blankValues(n int) []string {
	vals := make([]string, n)
	for i := range vals {
		vals[i] = NullValue
	}
	return vals
}

// mergeNotes appends the unseen texts of notes onto have, preserving
// first-seen order. Equality is exact string equality: near-duplicate
// footnote text from different cards stays separate.
func mergeNotes(have, notes []string) []string {
	for _, n := range notes {
		seen := false
		for _, h := range have {
			if h == n {
				seen = true
				break
			}
		}
		if !seen {
			have = append(have, n)
		}
	}
	return have
}

// NumCards returns the number of source cards (value columns).
func (m *MultiCard) NumCards() int {
	return m.columns
}

// Rows returns the merged rows in current order.
func (m *MultiCard) Rows() []TableRow {
	return append([]TableRow(nil), m.rows...)
}

// Table returns the multicolumn table view consumed by renderers.
func (m *MultiCard) Table() Table {
	return Table{Columns: m.columns, Rows: m.Rows()}
}

// SwapRows interchanges the rows at two absolute positions. Positions are
// only bounds-checked: swapping across a panel boundary breaks the panel
// grouping, and keeping swaps within a panel is the caller's responsibility.
// Use FieldListing to see current positions.
func (m *MultiCard) SwapRows(pos1, pos2 int) error {
	for _, pos := range []int{pos1, pos2} {
		if pos < 0 || pos >= len(m.rows) {
			return core.NewRowOutOfRangeError(pos, len(m.rows))
		}
	}
	m.rows[pos1], m.rows[pos2] = m.rows[pos2], m.rows[pos1]
	return nil
}

// FieldListing returns a panel-grouped listing of every row's absolute
// position and field name, for inspection before calling SwapRows.
func (m *MultiCard) FieldListing() string {
	var b strings.Builder
	last := PanelKind(-1)
	for i, r := range m.rows {
		if r.Panel != last {
			if last.valid() {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s:\n", r.Panel)
			last = r.Panel
		}
		fmt.Fprintf(&b, "%4d  %s\n", i, r.Field)
	}
	return b.String()
}

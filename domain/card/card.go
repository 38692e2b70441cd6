// Package card holds the panel record at the center of the network-cards
// system: a three-panel, insertion-ordered table of labeled fields with
// optional footnotes, plus its projections (rows, tables, multicards) and the
// snapshot codec. A card summarizes one network:
//
//	                    Name  Experiment A-1
//	                    Kind  Undirected, weighted
//	               Nodes are  Survey participants
//	               Links are  Self-reported social ties
//	        Link weights are  Number of contacts per day
//	          Considerations  Data gathered for a two-week period
//
//	         Number of nodes  50
//	         Number of links  34
//	                  Degree  1.4 [0, 6]
//	              Clustering  0.0
//	               Connected  18 components [44.00% in largest]
//	          Component size  2.8 [1, 22]
//	                Diameter  n/a
//
//	           Node metadata  Age, gender
//	           ...
//
// The package is pure data model; rendering lives in adapters/render and the
// default statistics in app.
package card

import (
	"github.com/network-cards/network-cards/domain/core"
)

// NullValue is the blank used for fields that have a label but no value yet.
const NullValue = ""

// Field is an ordered (name, value) pair for bulk updates.
type Field struct {
	Name  string
	Value string
}

// Card is a three-panel structured report for one network. Cards are private,
// in-memory mutable records; callers needing parallel report generation build
// one card per goroutine and combine results afterward.
type Card struct {
	panels [3]*panel
	sizes  [3]int
	cum    [3]int
}

// New returns an empty card. Use app.Populator to fill the default field set
// from a graph, or FromSnapshot/FromRows to reconstruct a saved card.
func New() *Card {
	c := &Card{}
	for i := range c.panels {
		c.panels[i] = newPanel()
	}
	c.resize()
	return c
}

// Update inserts field into the given panel (appended at the end of the
// panel's order) or overwrites the value of an existing field, leaving any
// attached footnotes untouched.
func (c *Card) Update(kind PanelKind, field, value string) {
	c.panels[kind].set(field, value)
	c.resize()
}

// Apply performs Update for several fields at once, in slice order.
func (c *Card) Apply(kind PanelKind, fields []Field) {
	for _, f := range fields {
		c.panels[kind].set(f.Name, f.Value)
	}
	c.resize()
}

// SetEntry replaces a field's whole entry, footnotes included, inserting the
// field if absent.
func (c *Card) SetEntry(kind PanelKind, field string, e Entry) {
	c.panels[kind].setEntry(field, e)
	c.resize()
}

// Entry returns a copy of the field's entry.
func (c *Card) Entry(kind PanelKind, field string) (Entry, bool) {
	return c.panels[kind].get(field)
}

// Remove deletes a field from the given panel. The order of the remaining
// fields does not shift.
func (c *Card) Remove(kind PanelKind, field string) error {
	if !c.panels[kind].remove(field) {
		return core.NewFieldNotFoundError(field, kind.String())
	}
	c.resize()
	return nil
}

// AddFootnote appends a footnote to the named field, searching the panels in
// Overall, Structure, Metainformation order and acting on the first match.
// Repeated calls append repeated footnotes even when the text is identical;
// de-duplication happens only at render time.
func (c *Card) AddFootnote(field, note string) error {
	for _, kind := range PanelKinds() {
		if c.panels[kind].addNote(field, note) {
			return nil
		}
	}
	return core.NewFieldNotFoundError(field, "")
}

// AddFootnotePanel appends a footnote to the field in one specific panel.
func (c *Card) AddFootnotePanel(kind PanelKind, field, note string) error {
	if !c.panels[kind].addNote(field, note) {
		return core.NewFieldNotFoundError(field, kind.String())
	}
	return nil
}

// Clear sets every field's value to value, keeping the field set and order
// intact. Footnotes are kept when keepNotes is true and discarded otherwise.
// Useful for producing a blank card template.
func (c *Card) Clear(value string, keepNotes bool) {
	for _, p := range c.panels {
		p.clear(value, keepNotes)
	}
}

// Fields returns the panel's field names in order.
func (c *Card) Fields(kind PanelKind) []string {
	return c.panels[kind].fields()
}

// PanelSize returns the number of fields in a panel.
func (c *Card) PanelSize(kind PanelKind) int {
	return c.sizes[kind]
}

// CumulativeSizes returns the running field counts after each panel, the row
// offsets at which renderers draw panel boundaries.
func (c *Card) CumulativeSizes() [3]int {
	return c.cum
}

// resize keeps the size accounting consistent after every mutation, so
// renderers can read panel boundaries without recomputation.
func (c *Card) resize() {
	total := 0
	for i, p := range c.panels {
		c.sizes[i] = p.len()
		total += p.len()
		c.cum[i] = total
	}
}

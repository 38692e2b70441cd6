package card

// Row is one projected card field: the flattened (panel, field, value,
// footnotes) unit consumed by renderers and the full-fidelity dump. Rows are
// produced fresh on every call and reflect the card's current state.
type Row struct {
	Panel PanelKind
	Field string
	Value string
	Notes []string
}

// TableRow is a projected row with one value per source card. Single cards
// project to one-column table rows.
type TableRow struct {
	Panel  PanelKind
	Field  string
	Values []string
	Notes  []string
}

// Table is the shared row view every renderer consumes: panels concatenated
// in fixed order, one row per field, Columns value columns.
type Table struct {
	Columns int
	Rows    []TableRow
}

// PanelSizes returns the number of rows in each panel.
func (t Table) PanelSizes() [3]int {
	var sizes [3]int
	for _, r := range t.Rows {
		sizes[r.Panel]++
	}
	return sizes
}

// Rows projects the card into one ordered row sequence, panels concatenated
// in fixed order.
func (c *Card) Rows() []Row {
	rows := make([]Row, 0, c.cum[Metainfo])
	for _, kind := range PanelKinds() {
		p := c.panels[kind]
		for _, field := range p.order {
			e := p.entries[field]
			rows = append(rows, Row{
				Panel: kind,
				Field: field,
				Value: e.Value,
				Notes: append([]string(nil), e.Notes...),
			})
		}
	}
	return rows
}

// Table projects the card into the single-column table view.
func (c *Card) Table() Table {
	rows := c.Rows()
	trows := make([]TableRow, len(rows))
	for i, r := range rows {
		trows[i] = TableRow{
			Panel:  r.Panel,
			Field:  r.Field,
			Values: []string{r.Value},
			Notes:  r.Notes,
		}
	}
	return Table{Columns: 1, Rows: trows}
}

// FromRows reconstructs a card from a full-fidelity row dump, restoring
// values and footnotes. Rows keep their given order within each panel.
func FromRows(rows []Row) *Card {
	c := New()
	for _, r := range rows {
		if !r.Panel.valid() {
			continue
		}
		c.SetEntry(r.Panel, r.Field, Entry{Value: r.Value, Notes: r.Notes})
	}
	return c
}

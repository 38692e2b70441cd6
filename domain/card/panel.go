package card

// PanelKind identifies one of the card's three panels. The declaration order
// is the fixed panel order every renderer must reproduce.
type PanelKind int

const (
	Overall PanelKind = iota
	Structure
	Metainfo
)

var panelNames = [...]string{"Overall", "Structure", "Metainformation"}

// PanelKinds returns the three panels in fixed order.
func PanelKinds() []PanelKind {
	return []PanelKind{Overall, Structure, Metainfo}
}

// String returns the panel's display name.
func (k PanelKind) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return panelNames[k]
}

func (k PanelKind) valid() bool {
	return k >= Overall && k <= Metainfo
}

// panel is an insertion-ordered field -> entry mapping. Field order is
// semantically meaningful and survives every mutation except removal of the
// field itself.
type panel struct {
	order   []string
	entries map[string]Entry
}

func newPanel() *panel {
	return &panel{entries: make(map[string]Entry)}
}

func (p *panel) len() int {
	return len(p.order)
}

func (p *panel) has(field string) bool {
	_, ok := p.entries[field]
	return ok
}

func (p *panel) get(field string) (Entry, bool) {
	e, ok := p.entries[field]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// set inserts the field at the end of the order, or overwrites the value of
// an existing field leaving its footnotes untouched.
func (p *panel) set(field, value string) {
	if e, ok := p.entries[field]; ok {
		e.Value = value
		p.entries[field] = e
		return
	}
	p.order = append(p.order, field)
	p.entries[field] = Entry{Value: value}
}

// setEntry replaces the whole entry, footnotes included.
func (p *panel) setEntry(field string, e Entry) {
	if !p.has(field) {
		p.order = append(p.order, field)
	}
	p.entries[field] = e.clone()
}

func (p *panel) remove(field string) bool {
	if !p.has(field) {
		return false
	}
	delete(p.entries, field)
	for i, f := range p.order {
		if f == field {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

func (p *panel) addNote(field, note string) bool {
	e, ok := p.entries[field]
	if !ok {
		return false
	}
	p.entries[field] = e.WithNote(note)
	return true
}

func (p *panel) clear(value string, keepNotes bool) {
	for _, field := range p.order {
		e := p.entries[field]
		e.Value = value
		if !keepNotes {
			e.Notes = nil
		}
		p.entries[field] = e
	}
}

func (p *panel) fields() []string {
	return append([]string(nil), p.order...)
}

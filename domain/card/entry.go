package card

// Entry is one field's content: a value plus the ordered footnote texts
// attached to it. An entry with no footnotes renders identically to a bare
// value; attaching a footnote never changes the value.
type Entry struct {
	Value string
	Notes []string
}

// NewEntry builds an entry from a value and optional footnotes.
func NewEntry(value string, notes ...string) Entry {
	return Entry{Value: value, Notes: append([]string(nil), notes...)}
}

// WithNote returns a copy of the entry with one more footnote appended.
func (e Entry) WithNote(note string) Entry {
	c := e.clone()
	c.Notes = append(c.Notes, note)
	return c
}

func (e Entry) clone() Entry {
	return Entry{Value: e.Value, Notes: append([]string(nil), e.Notes...)}
}

package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/network-cards/network-cards/domain/core"
)

// snapshotKeys are the three top-level keys of the persisted snapshot, in
// panel order.
var snapshotKeys = [...]string{"overall", "structure", "metainfo"}

// Snapshot serializes the card as a JSON document with exactly three
// top-level keys (overall, structure, metainfo), each an ordered field ->
// value mapping. Footnotes are a presentation concern and are deliberately
// not part of the snapshot; use Rows/FromRows to round-trip presentation
// state.
func (c *Card) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, kind := range PanelKinds() {
		if kind > Overall {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(snapshotKeys[kind])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteByte('{')
		p := c.panels[kind]
		for i, field := range p.order {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(field)
			if err != nil {
				return nil, err
			}
			value, err := json.Marshal(p.entries[field].Value)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteSnapshot writes the snapshot document to w.
func (c *Card) WriteSnapshot(w io.Writer) error {
	data, err := c.Snapshot()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// FromSnapshot reconstructs a card from a snapshot document, preserving
// field order. The card has no footnotes and no automatic statistics; rerun
// the populator separately if computed fields are wanted.
func FromSnapshot(data []byte) (*Card, error) {
	return ReadSnapshot(bytes.NewReader(data))
}

// ReadSnapshot reads a snapshot document from r. The three panel keys may
// appear in any order but each must appear exactly once.
func ReadSnapshot(r io.Reader) (*Card, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	kindByKey := map[string]PanelKind{
		snapshotKeys[Overall]:   Overall,
		snapshotKeys[Structure]: Structure,
		snapshotKeys[Metainfo]:  Metainfo,
	}

	c := New()
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, core.NewSnapshotError(err.Error())
		}
		key := tok.(string)
		kind, ok := kindByKey[key]
		if !ok {
			return nil, core.NewSnapshotError(fmt.Sprintf("unexpected top-level key %q", key))
		}
		if seen[key] {
			return nil, core.NewSnapshotError(fmt.Sprintf("duplicate top-level key %q", key))
		}
		seen[key] = true

		if err := readPanel(dec, c, kind); err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	for _, key := range snapshotKeys {
		if !seen[key] {
			return nil, core.NewSnapshotError(fmt.Sprintf("missing top-level key %q", key))
		}
	}
	return c, nil
}

// readPanel consumes one panel object, inserting its fields in document
// order.
func readPanel(dec *json.Decoder, c *Card, kind PanelKind) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return core.NewSnapshotError(err.Error())
		}
		field := tok.(string)

		tok, err = dec.Token()
		if err != nil {
			return core.NewSnapshotError(err.Error())
		}
		value, err := scalarValue(tok)
		if err != nil {
			return core.NewSnapshotError(fmt.Sprintf("field %q: %v", field, err))
		}
		c.Update(kind, field, value)
	}
	return expectDelim(dec, '}')
}

// scalarValue renders a decoded JSON scalar as the card's string value.
// Hand-authored snapshots may use bare numbers or nulls for values.
func scalarValue(tok json.Token) (string, error) {
	switch v := tok.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return fmt.Sprintf("%v", v), nil
	case nil:
		return NullValue, nil
	default:
		return "", fmt.Errorf("unsupported value type %T", tok)
	}
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return core.NewSnapshotError(err.Error())
	}
	if d, ok := tok.(json.Delim); !ok || rune(d) != want {
		return core.NewSnapshotError(fmt.Sprintf("expected %q, found %v", want, tok))
	}
	return nil
}

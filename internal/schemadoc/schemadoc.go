// Package schemadoc turns the network-card JSON schema into human-readable
// documentation: a LaTeX description list, a Markdown list, or HTML.
package schemadoc

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
)

// panelKeys are the schema's panel blocks, in card panel order.
var panelKeys = [...]string{"overall", "structure", "metainfo"}

// FieldDoc is one documented card field.
type FieldDoc struct {
	Name        string
	Description string
}

// PanelDoc is one panel's documented field set, in schema document order.
type PanelDoc struct {
	Panel  string
	Fields []FieldDoc
}

// Parse extracts the panel documentation from a card schema document,
// preserving the schema's field order.
func Parse(r io.Reader) ([]PanelDoc, error) {
	dec := json.NewDecoder(r)
	root, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	props, err := objectMember(root, "properties")
	if err != nil {
		return nil, err
	}

	var docs []PanelDoc
	for _, key := range panelKeys {
		panelObj, err := objectMember(props, key)
		if err != nil {
			return nil, err
		}
		fieldsObj, err := objectMember(panelObj, "properties")
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", key, err)
		}
		doc := PanelDoc{Panel: capitalize(key)}
		for _, m := range fieldsObj {
			desc := ""
			if fieldObj, ok := m.value.([]member); ok {
				for _, fm := range fieldObj {
					if fm.key == "description" {
						if s, ok := fm.value.(string); ok {
							desc = s
						}
					}
				}
			}
			doc.Fields = append(doc.Fields, FieldDoc{Name: m.key, Description: desc})
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Latex renders the documentation as nested description environments, for
// inclusion in the card documentation.
func Latex(docs []PanelDoc) string {
	var b strings.Builder
	b.WriteString("% generated by schemadoc\n")
	b.WriteString("\\begin{description}\n")
	for _, d := range docs {
		fmt.Fprintf(&b, "\\item[%s]\n", d.Panel)
		b.WriteString("\\begin{description}\n")
		for _, f := range d.Fields {
			fmt.Fprintf(&b, "\\item[%s] %s\n", f.Name, f.Description)
		}
		b.WriteString("\\end{description}\n")
	}
	b.WriteString("\\end{description}\n")
	return b.String()
}

// Markdown renders the documentation as a heading-and-list document.
func Markdown(docs []PanelDoc) string {
	var b strings.Builder
	for i, d := range docs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "## %s\n\n", d.Panel)
		for _, f := range d.Fields {
			fmt.Fprintf(&b, "- **%s**: %s\n", f.Name, f.Description)
		}
	}
	return b.String()
}

// HTML renders the Markdown documentation to HTML.
func HTML(docs []PanelDoc) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	return string(markdown.ToHTML([]byte(Markdown(docs)), p, nil))
}

// member is one key of an ordered JSON object.
type member struct {
	key   string
	value any
}

// parseValue decodes one JSON value, representing objects as ordered member
// slices so schema field order survives.
func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseFrom(dec, tok)
}

func parseFrom(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var obj []member
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, found %v", keyTok)
				}
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				obj = append(obj, member{key: key, value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			var arr []any
			for dec.More() {
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	default:
		return tok, nil
	}
}

// objectMember finds a key's object value inside an ordered object.
func objectMember(v any, key string) ([]member, error) {
	obj, ok := v.([]member)
	if !ok {
		return nil, fmt.Errorf("expected object while looking for %q", key)
	}
	for _, m := range obj {
		if m.key == key {
			inner, ok := m.value.([]member)
			if !ok {
				return nil, fmt.Errorf("%q is not an object", key)
			}
			return inner, nil
		}
	}
	return nil, fmt.Errorf("schema has no %q object", key)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

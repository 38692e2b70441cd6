package card

import (
	"errors"
	"strings"
	"testing"

	"github.com/network-cards/network-cards/domain/core"
)

// TestSnapshotDocumentOrder tests that the snapshot preserves panel and field
// order exactly
func TestSnapshotDocumentOrder(t *testing.T) {
	c := New()
	c.Update(Overall, "Name", "Karate")
	c.Update(Overall, "Kind", "Undirected, unweighted")
	c.Update(Structure, "Number of nodes", "34")
	c.Update(Structure, "Number of links", "78")
	c.Update(Metainfo, "Access", "Public")

	data, err := c.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	want := `{"overall":{"Name":"Karate","Kind":"Undirected, unweighted"},` +
		`"structure":{"Number of nodes":"34","Number of links":"78"},` +
		`"metainfo":{"Access":"Public"}}`
	if string(data) != want {
		t.Errorf("Snapshot mismatch:\ngot  %s\nwant %s", data, want)
	}
}

func TestSnapshotEmptyCard(t *testing.T) {
	data, err := New().Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	want := `{"overall":{},"structure":{},"metainfo":{}}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

// TestSnapshotRoundTrip tests that FromSnapshot restores values and order,
// and that footnotes deliberately do not survive
func TestSnapshotRoundTrip(t *testing.T) {
	c := New()
	c.Update(Overall, "Name", "Karate")
	c.SetEntry(Structure, "Degree", NewEntry("4.59 [1, 17]", "Summarized."))
	c.Update(Metainfo, "Access", "Public")

	data, err := c.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	restored, err := FromSnapshot(data)
	if err != nil {
		t.Fatalf("FromSnapshot failed: %v", err)
	}

	e, ok := restored.Entry(Structure, "Degree")
	if !ok {
		t.Fatal("Degree missing after round trip")
	}
	if e.Value != "4.59 [1, 17]" {
		t.Errorf("Expected value restored, got %q", e.Value)
	}
	if len(e.Notes) != 0 {
		t.Errorf("Footnotes must not survive the snapshot, got %v", e.Notes)
	}

	fields := restored.Fields(Overall)
	if len(fields) != 1 || fields[0] != "Name" {
		t.Errorf("Unexpected overall fields: %v", fields)
	}
}

// TestReadSnapshotKeyOrderIndependent tests that panel keys may arrive in any
// order
func TestReadSnapshotKeyOrderIndependent(t *testing.T) {
	doc := `{"metainfo":{"Access":"Public"},"overall":{"Name":"net"},"structure":{}}`
	c, err := FromSnapshot([]byte(doc))
	if err != nil {
		t.Fatalf("FromSnapshot failed: %v", err)
	}
	if e, _ := c.Entry(Metainfo, "Access"); e.Value != "Public" {
		t.Errorf("Expected Access=Public, got %+v", e)
	}
}

// TestReadSnapshotScalarCoercion tests hand-authored values of non-string
// scalar types
func TestReadSnapshotScalarCoercion(t *testing.T) {
	doc := `{"overall":{"Name":"net"},"structure":{"Number of nodes":34,"Clustering":0.571,"Connected":true,"Diameter":null},"metainfo":{}}`
	c, err := FromSnapshot([]byte(doc))
	if err != nil {
		t.Fatalf("FromSnapshot failed: %v", err)
	}

	tests := []struct {
		field string
		want  string
	}{
		{"Number of nodes", "34"},
		{"Clustering", "0.571"},
		{"Connected", "true"},
		{"Diameter", NullValue},
	}
	for _, test := range tests {
		e, ok := c.Entry(Structure, test.field)
		if !ok {
			t.Errorf("Field %q missing", test.field)
			continue
		}
		if e.Value != test.want {
			t.Errorf("Field %q: expected %q, got %q", test.field, test.want, e.Value)
		}
	}
}

func TestReadSnapshotMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing panel", `{"overall":{},"structure":{}}`},
		{"duplicate panel", `{"overall":{},"overall":{},"structure":{},"metainfo":{}}`},
		{"unknown key", `{"overall":{},"structure":{},"metainfo":{},"extra":{}}`},
		{"array value", `{"overall":{"Name":[1,2]},"structure":{},"metainfo":{}}`},
		{"not an object", `[1,2,3]`},
		{"truncated", `{"overall":{"Name":"x"`},
	}
	for _, test := range tests {
		_, err := FromSnapshot([]byte(test.doc))
		if err == nil {
			t.Errorf("%s: expected error, got none", test.name)
			continue
		}
		if !errors.Is(err, core.ErrMalformedSnapshot) {
			t.Errorf("%s: expected a malformed-snapshot error, got %v", test.name, err)
		}
	}
}

func TestWriteSnapshot(t *testing.T) {
	c := New()
	c.Update(Overall, "Name", "net")

	var b strings.Builder
	if err := c.WriteSnapshot(&b); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}
	if !strings.Contains(b.String(), `"Name":"net"`) {
		t.Errorf("Unexpected document: %s", b.String())
	}
}

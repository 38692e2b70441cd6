package card

import (
	"testing"
)

// TestUpdateInsertsInOrder tests that new fields land at the end of their panel
func TestUpdateInsertsInOrder(t *testing.T) {
	c := New()
	c.Update(Overall, "Name", "Zachary Karate Club")
	c.Update(Overall, "Kind", "Undirected, unweighted")
	c.Update(Structure, "Number of nodes", "34")

	fields := c.Fields(Overall)
	if len(fields) != 2 {
		t.Fatalf("Expected 2 overall fields, got %d", len(fields))
	}
	if fields[0] != "Name" || fields[1] != "Kind" {
		t.Errorf("Unexpected field order: %v", fields)
	}
	if c.PanelSize(Structure) != 1 {
		t.Errorf("Expected 1 structure field, got %d", c.PanelSize(Structure))
	}
}

// TestUpdateOverwriteKeepsOrderAndNotes tests overwrite semantics
func TestUpdateOverwriteKeepsOrderAndNotes(t *testing.T) {
	c := New()
	c.Update(Overall, "Name", "draft")
	c.Update(Overall, "Kind", "Undirected, unweighted")
	if err := c.AddFootnote("Name", "Working title."); err != nil {
		t.Fatalf("AddFootnote failed: %v", err)
	}

	c.Update(Overall, "Name", "final")

	fields := c.Fields(Overall)
	if fields[0] != "Name" {
		t.Errorf("Overwrite moved the field: %v", fields)
	}
	e, ok := c.Entry(Overall, "Name")
	if !ok {
		t.Fatal("Entry not found after overwrite")
	}
	if e.Value != "final" {
		t.Errorf("Expected value 'final', got %q", e.Value)
	}
	if len(e.Notes) != 1 || e.Notes[0] != "Working title." {
		t.Errorf("Overwrite should keep footnotes, got %v", e.Notes)
	}
}

// TestApplyBulkUpdate tests ordered bulk insertion
func TestApplyBulkUpdate(t *testing.T) {
	c := New()
	c.Apply(Metainfo, []Field{
		{"Node metadata", "None"},
		{"Link metadata", "None"},
		{"Access", "Public"},
	})

	fields := c.Fields(Metainfo)
	want := []string{"Node metadata", "Link metadata", "Access"}
	if len(fields) != len(want) {
		t.Fatalf("Expected %d fields, got %d", len(want), len(fields))
	}
	for i, f := range want {
		if fields[i] != f {
			t.Errorf("Field %d: expected %q, got %q", i, f, fields[i])
		}
	}
}

// TestSetEntryReplacesNotes tests that SetEntry replaces the whole entry
func TestSetEntryReplacesNotes(t *testing.T) {
	c := New()
	c.Update(Structure, "Degree", "4.59 [1, 17]")
	if err := c.AddFootnote("Degree", "Old note."); err != nil {
		t.Fatalf("AddFootnote failed: %v", err)
	}

	c.SetEntry(Structure, "Degree", NewEntry("4.59 [1, 17]", "New note."))

	e, _ := c.Entry(Structure, "Degree")
	if len(e.Notes) != 1 || e.Notes[0] != "New note." {
		t.Errorf("SetEntry should replace footnotes, got %v", e.Notes)
	}
}

// TestEntryReturnsCopy tests that mutating a returned entry does not leak
// back into the card
func TestEntryReturnsCopy(t *testing.T) {
	c := New()
	c.SetEntry(Overall, "Name", NewEntry("net", "A note."))

	e, _ := c.Entry(Overall, "Name")
	e.Notes[0] = "mutated"

	again, _ := c.Entry(Overall, "Name")
	if again.Notes[0] != "A note." {
		t.Errorf("Entry leaked internal state: %v", again.Notes)
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Update(Structure, "Number of nodes", "10")
	c.Update(Structure, "Number of links", "9")
	c.Update(Structure, "Degree", "[2, 2, 2, 1, 1]")

	if err := c.Remove(Structure, "Number of links"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	fields := c.Fields(Structure)
	if len(fields) != 2 || fields[0] != "Number of nodes" || fields[1] != "Degree" {
		t.Errorf("Unexpected fields after remove: %v", fields)
	}

	if err := c.Remove(Structure, "Number of links"); err == nil {
		t.Error("Expected error removing a missing field")
	}
	if err := c.Remove(Overall, "Number of nodes"); err == nil {
		t.Error("Expected error removing from the wrong panel")
	}
}

// TestAddFootnotePanelSearch tests the Overall-first panel search order and
// that repeated attachment keeps duplicates
func TestAddFootnotePanelSearch(t *testing.T) {
	c := New()
	c.Update(Overall, "Name", "a")
	c.Update(Structure, "Name", "b")

	if err := c.AddFootnote("Name", "Shared label."); err != nil {
		t.Fatalf("AddFootnote failed: %v", err)
	}

	e, _ := c.Entry(Overall, "Name")
	if len(e.Notes) != 1 {
		t.Errorf("Expected the note on the Overall field, got %v", e.Notes)
	}
	e, _ = c.Entry(Structure, "Name")
	if len(e.Notes) != 0 {
		t.Errorf("Structure field should stay untouched, got %v", e.Notes)
	}

	// Identical text attaches twice; renderers collapse it, the card does not.
	if err := c.AddFootnotePanel(Structure, "Name", "Note."); err != nil {
		t.Fatalf("AddFootnotePanel failed: %v", err)
	}
	if err := c.AddFootnotePanel(Structure, "Name", "Note."); err != nil {
		t.Fatalf("AddFootnotePanel failed: %v", err)
	}
	e, _ = c.Entry(Structure, "Name")
	if len(e.Notes) != 2 {
		t.Errorf("Expected 2 notes, got %v", e.Notes)
	}

	if err := c.AddFootnote("No such field", "x"); err == nil {
		t.Error("Expected error for an unknown field")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Update(Overall, "Name", "net")
	c.SetEntry(Structure, "Degree", NewEntry("3.2 [1, 9]", "Summarized."))

	c.Clear(NullValue, true)

	e, _ := c.Entry(Overall, "Name")
	if e.Value != NullValue {
		t.Errorf("Expected blank value, got %q", e.Value)
	}
	e, _ = c.Entry(Structure, "Degree")
	if len(e.Notes) != 1 {
		t.Errorf("Clear with keepNotes should keep footnotes, got %v", e.Notes)
	}

	c.Clear("n/a", false)
	e, _ = c.Entry(Structure, "Degree")
	if e.Value != "n/a" || len(e.Notes) != 0 {
		t.Errorf("Clear without keepNotes should drop footnotes: %+v", e)
	}
}

// TestCumulativeSizes tests the boundary offsets renderers rely on
func TestCumulativeSizes(t *testing.T) {
	c := New()
	c.Update(Overall, "Name", "net")
	c.Update(Overall, "Kind", "Undirected, unweighted")
	c.Update(Structure, "Number of nodes", "5")
	c.Update(Metainfo, "Access", "Public")

	cum := c.CumulativeSizes()
	if cum != [3]int{2, 3, 4} {
		t.Errorf("Expected cumulative sizes [2 3 4], got %v", cum)
	}

	if err := c.Remove(Overall, "Kind"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	cum = c.CumulativeSizes()
	if cum != [3]int{1, 2, 3} {
		t.Errorf("Expected cumulative sizes [1 2 3] after remove, got %v", cum)
	}
}

func TestPanelKindString(t *testing.T) {
	tests := []struct {
		kind PanelKind
		want string
	}{
		{Overall, "Overall"},
		{Structure, "Structure"},
		{Metainfo, "Metainformation"},
		{PanelKind(7), "Unknown"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("PanelKind(%d).String() = %q, want %q", test.kind, got, test.want)
		}
	}
}

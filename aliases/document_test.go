package aliases

import (
	"encoding/json"
	"testing"
)

func TestRecordSetInsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewRecordSet()
	s.Set("zeta", Record{SteamID: "1"})
	s.Set("alpha", Record{SteamID: "2"})
	s.Set("mid", Record{SteamID: "3"})

	entries := s.Entries()
	got := []string{entries[0].Alias, entries[1].Alias, entries[2].Alias}
	want := []string{"zeta", "alpha", "mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Entries() order = %v, want %v", got, want)
		}
	}
}

func TestRecordSetOverwriteKeepsPosition(t *testing.T) {
	t.Parallel()

	s := NewRecordSet()
	s.Set("first", Record{SteamID: "1"})
	s.Set("second", Record{SteamID: "2"})
	s.Set("first", Record{SteamID: "changed"})

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() len = %d, want 2", len(entries))
	}
	if entries[0].Alias != "first" || entries[0].Record.SteamID != "changed" {
		t.Fatalf("Entries()[0] = %+v, want first/changed", entries[0])
	}
}

func TestRecordSetDelete(t *testing.T) {
	t.Parallel()

	s := NewRecordSet()
	s.Set("a", Record{SteamID: "1"})
	if !s.Delete("a") {
		t.Fatalf("Delete(a) = false, want true")
	}
	if s.Delete("a") {
		t.Fatalf("Delete(a) second time = true, want false")
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestDocumentJSONRoundTripPreservesOrder(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	doc.EnsureChat("room-9").Aliases.Set("zed", Record{SteamID: "76561197960265729", CreatedAt: 100})
	doc.EnsureChat("room-9").Aliases.Set("abe", Record{SteamID: "76561197960265730", CreatedAt: 200})
	doc.EnsureChat("room-1").Aliases.Set("solo", Record{SteamID: "76561197960265731", CreatedAt: 300})

	first, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}

	reloaded := NewDocument()
	if err := json.Unmarshal(first, reloaded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	second, err := json.MarshalIndent(reloaded, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent() second error = %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("round trip changed bytes:\nfirst:\n%s\nsecond:\n%s", first, second)
	}

	chat, ok := reloaded.Chat("room-9")
	if !ok {
		t.Fatalf("Chat(room-9) missing after round trip")
	}
	entries := chat.Aliases.Entries()
	if len(entries) != 2 || entries[0].Alias != "zed" || entries[1].Alias != "abe" {
		t.Fatalf("round trip lost alias order: %+v", entries)
	}
}

func TestDocumentUnmarshalRejectsNonObject(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	if err := json.Unmarshal([]byte(`["not","an","object"]`), doc); err == nil {
		t.Fatalf("Unmarshal(array) error = nil, want error")
	}
}

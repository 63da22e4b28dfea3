package aliases

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.json")
	return NewFileStore(path), path
}

func TestUpsertNormalizesAlias(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	for _, alias := range []string{"@Foo", "foo", " FOO "} {
		if err := store.Upsert("chat-1", alias, Record{SteamID: "76561197960265729"}); err != nil {
			t.Fatalf("Upsert(%q) error = %v", alias, err)
		}
	}

	entries, err := store.List("chat-1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List() len = %d, want 1 (all forms normalize to one key)", len(entries))
	}
	if entries[0].Alias != "foo" {
		t.Fatalf("List()[0].Alias = %q, want \"foo\"", entries[0].Alias)
	}
}

func TestUpsertIsIdempotentPerAlias(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	rec := Record{SteamID: "76561197960265729", PersonaName: "one", CreatedAt: 100}
	if err := store.Upsert("chat-1", "foo", rec); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	rec.CreatedAt = 200
	if err := store.Upsert("chat-1", "foo", rec); err != nil {
		t.Fatalf("Upsert() second error = %v", err)
	}

	entries, err := store.List("chat-1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List() len = %d, want 1", len(entries))
	}
	if entries[0].Record.CreatedAt != 200 {
		t.Fatalf("CreatedAt = %d, want 200 (overwritten wholesale)", entries[0].Record.CreatedAt)
	}
}

func TestAliasesAreChatScoped(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	if err := store.Upsert("chat-a", "foo", Record{SteamID: "1111111111111111"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Upsert("chat-b", "foo", Record{SteamID: "2222222222222222"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	recA, ok, err := store.Get("chat-a", "foo")
	if err != nil || !ok {
		t.Fatalf("Get(chat-a) = %v, %v, %v", recA, ok, err)
	}
	recB, ok, err := store.Get("chat-b", "foo")
	if err != nil || !ok {
		t.Fatalf("Get(chat-b) = %v, %v, %v", recB, ok, err)
	}
	if recA.SteamID == recB.SteamID {
		t.Fatalf("same record across chats: %q", recA.SteamID)
	}
}

func TestEmptyChatKeyFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	if err := store.Upsert("", "foo", Record{SteamID: "1"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if _, ok, _ := store.Get(DefaultChatKey, "foo"); !ok {
		t.Fatalf("Get(%q) missing record stored under empty chat key", DefaultChatKey)
	}
}

func TestRemoveMissingAliasWritesNothing(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	removed, err := store.Remove("chat-1", "never-bound")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if removed {
		t.Fatalf("Remove() = true, want false")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("store file exists after no-op remove: %v", err)
	}
}

func TestRemoveExistingAlias(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	if err := store.Upsert("chat-1", "foo", Record{SteamID: "1"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	removed, err := store.Remove("chat-1", "@FOO")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if !removed {
		t.Fatalf("Remove() = false, want true")
	}
	if _, ok, _ := store.Get("chat-1", "foo"); ok {
		t.Fatalf("Get() found record after remove")
	}
}

func TestCorruptFileLoadsAsEmpty(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("{{{ not json"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	entries, err := store.List("chat-1")
	if err != nil {
		t.Fatalf("List() over corrupt file error = %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("List() = %v, want empty", entries)
	}
}

func TestSaveLoadRoundTripStableBytes(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	if err := store.Upsert("room-2", "zed", Record{SteamID: "76561197960265729", PersonaName: "Zed", CreatedAt: 10}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Upsert("room-2", "abe", Record{SteamID: "76561197960265730", PersonaName: "Abe", CreatedAt: 20}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Upsert("room-1", "cat", Record{SteamID: "76561197960265731", CreatedAt: 30}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	// A logically unchanged rewrite must reproduce identical bytes.
	doc := store.load()
	if err := store.save(doc); err != nil {
		t.Fatalf("save() error = %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("rewrite changed bytes:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

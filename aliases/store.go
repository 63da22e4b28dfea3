package aliases

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/morphlab/steamward/internal/fsstore"
)

// FileStore owns the persisted alias document. Every operation reloads the
// file, mutates, and writes back atomically under one lock; there is no
// in-memory copy that could go stale between command invocations.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// load reads the document fresh from disk. A missing, unreadable, or
// undecodable file yields an empty document: the store never refuses to
// start over corrupt state, it only warns.
func (s *FileStore) load() *Document {
	doc := NewDocument()
	if _, err := fsstore.ReadJSON(s.path, doc); err != nil {
		if errors.Is(err, fsstore.ErrDecodeFailed) {
			slog.Warn("alias_store_corrupt", "path", s.path, "error", err.Error())
		} else {
			slog.Warn("alias_store_unreadable", "path", s.path, "error", err.Error())
		}
		return NewDocument()
	}
	return doc
}

func (s *FileStore) save(doc *Document) error {
	return fsstore.WriteJSONAtomic(s.path, doc, fsstore.FileOptions{})
}

// Upsert binds alias to rec in the chat scope, overwriting any prior
// binding, and persists.
func (s *FileStore) Upsert(chatKey, alias string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	doc.EnsureChat(NormalizeChatKey(chatKey)).Aliases.Set(Normalize(alias), rec)
	return s.save(doc)
}

// Remove deletes a binding. It reports whether the alias existed; nothing is
// written when it did not.
func (s *FileStore) Remove(chatKey, alias string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	chat, ok := doc.Chat(NormalizeChatKey(chatKey))
	if !ok || !chat.Aliases.Delete(Normalize(alias)) {
		return false, nil
	}
	if err := s.save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the chat's bindings in bind order.
func (s *FileStore) List(chatKey string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, ok := s.load().Chat(NormalizeChatKey(chatKey))
	if !ok {
		return nil, nil
	}
	return chat.Aliases.Entries(), nil
}

// Get looks up one binding by normalized alias.
func (s *FileStore) Get(chatKey, alias string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, ok := s.load().Chat(NormalizeChatKey(chatKey))
	if !ok {
		return Record{}, false, nil
	}
	rec, ok := chat.Aliases.Get(Normalize(alias))
	return rec, ok, nil
}

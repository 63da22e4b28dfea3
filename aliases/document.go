package aliases

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the persisted store: chat key -> chat scope, in first-insertion
// order. Order is part of the on-disk contract: reloading and rewriting an
// unchanged document must reproduce identical bytes, and listings follow
// bind order rather than lexical order.
type Document struct {
	keys  []string
	chats map[string]*Chat
}

// Chat owns one conversation's alias bindings.
type Chat struct {
	Aliases *RecordSet `json:"aliases"`
}

func NewDocument() *Document {
	return &Document{chats: map[string]*Chat{}}
}

func (d *Document) Chat(chatKey string) (*Chat, bool) {
	c, ok := d.chats[chatKey]
	return c, ok
}

// EnsureChat returns the chat scope, creating it on first use.
func (d *Document) EnsureChat(chatKey string) *Chat {
	if c, ok := d.chats[chatKey]; ok {
		if c.Aliases == nil {
			c.Aliases = NewRecordSet()
		}
		return c
	}
	c := &Chat{Aliases: NewRecordSet()}
	d.keys = append(d.keys, chatKey)
	d.chats[chatKey] = c
	return c
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return marshalOrderedObject(d.keys, func(key string) (any, error) {
		return d.chats[key], nil
	})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	d.keys = nil
	d.chats = map[string]*Chat{}
	return unmarshalOrderedObject(data, func(key string, dec *json.Decoder) error {
		var c Chat
		if err := dec.Decode(&c); err != nil {
			return err
		}
		if c.Aliases == nil {
			c.Aliases = NewRecordSet()
		}
		d.keys = append(d.keys, key)
		d.chats[key] = &c
		return nil
	})
}

// RecordSet is an insertion-ordered alias -> Record map.
type RecordSet struct {
	keys []string
	recs map[string]Record
}

func NewRecordSet() *RecordSet {
	return &RecordSet{recs: map[string]Record{}}
}

func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

func (s *RecordSet) Get(alias string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	rec, ok := s.recs[alias]
	return rec, ok
}

// Set overwrites in place for existing aliases so re-linking does not move
// an alias to the end of the listing.
func (s *RecordSet) Set(alias string, rec Record) {
	if _, ok := s.recs[alias]; !ok {
		s.keys = append(s.keys, alias)
	}
	s.recs[alias] = rec
}

func (s *RecordSet) Delete(alias string) bool {
	if s == nil {
		return false
	}
	if _, ok := s.recs[alias]; !ok {
		return false
	}
	delete(s.recs, alias)
	for i, k := range s.keys {
		if k == alias {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

func (s *RecordSet) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, Entry{Alias: k, Record: s.recs[k]})
	}
	return out
}

func (s *RecordSet) MarshalJSON() ([]byte, error) {
	return marshalOrderedObject(s.keys, func(key string) (any, error) {
		return s.recs[key], nil
	})
}

func (s *RecordSet) UnmarshalJSON(data []byte) error {
	s.keys = nil
	s.recs = map[string]Record{}
	return unmarshalOrderedObject(data, func(key string, dec *json.Decoder) error {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		s.keys = append(s.keys, key)
		s.recs[key] = rec
		return nil
	})
}

func marshalOrderedObject(keys []string, value func(key string) (any, error)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := value(key)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalOrderedObject walks a JSON object token by token so member order
// survives the round trip.
func unmarshalOrderedObject(data []byte, member func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		if err := member(key, dec); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/homework/internal/model"
)

// MarshalJSON writes the Store as a single JSON object whose keys follow the
// Store's order.
func (s *Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Name)
		if err != nil {
			return nil, fmt.Errorf("marshal name: %w", err)
		}
		rec := e.Record
		if rec.Assignments == nil {
			rec.Assignments = []string{}
		}
		v, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshal class %q: %w", e.Name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the Store's content with the object in data, keeping
// key order. A key repeated in the document keeps its first position and its
// last value.
func (s *Store) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read store: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("read store: expected object, got %v", tok)
	}
	next := Store{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read class name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("read class name: unexpected %v", tok)
		}
		var rec model.ClassRecord
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("read class %q: %w", name, err)
		}
		next.Put(name, rec)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read store: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("read store: trailing data after object")
	}
	s.entries = next.entries
	return nil
}

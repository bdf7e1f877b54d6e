package param

import (
	"fmt"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Store is a key to Entry table that remembers insertion order.
// It is not safe for concurrent use.
type Store struct {
	m *orderedmap.OrderedMap[string, *Entry]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{m: orderedmap.New[string, *Entry]()}
}

// Upsert inserts e under key or replaces the existing entry. A replaced key
// keeps its original position.
func (s *Store) Upsert(key string, e *Entry) {
	s.m.Set(key, e)
}

// Lookup returns the entry stored under key.
func (s *Store) Lookup(key string) (*Entry, error) {
	e, ok := s.m.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return e, nil
}

// Get returns the whole value of key.
func (s *Store) Get(key string) (Value, error) {
	e, err := s.Lookup(key)
	if err != nil {
		return nil, err
	}
	if e.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoValue, key)
	}
	return e.Value, nil
}

// GetAt returns element i of key; see Entry.At.
func (s *Store) GetAt(key string, i int) (Value, error) {
	e, err := s.Lookup(key)
	if err != nil {
		return nil, err
	}
	v, err := e.At(i)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", key, err)
	}
	return v, nil
}

// Remove deletes key and returns the entry it held.
func (s *Store) Remove(key string) (*Entry, error) {
	e, ok := s.m.Delete(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return e, nil
}

// Take reads the value of key and then removes it. Nothing is removed when
// the read fails.
func (s *Store) Take(key string) (Value, error) {
	v, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	s.m.Delete(key)
	return v, nil
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return s.m.Len()
}

// Keys returns all keys in insertion order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// All iterates over the entries in insertion order.
func (s *Store) All() iter.Seq2[string, *Entry] {
	return func(yield func(string, *Entry) bool) {
		for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

package repository

import (
	"fmt"
	"strings"
	"sync"

	"sales_engine/internal/clock"
	"sales_engine/internal/domain/entities"
)

// Index declares one secondary attribute of a collection.
//
// Key extracts the index key from a record. Normalize, when set, converts a
// caller-supplied lookup value into the same key space (case folding, date
// truncation, money formatting).
type Index[T any] struct {
	Attribute string
	Key       func(T) string
	Normalize func(string) string
}

// Schema describes how rows become records and which attributes are indexed.
type Schema[T entities.Record[T]] struct {
	Kind    entities.Kind
	Decode  func(entities.Row) (T, error)
	Indexes []Index[T]
}

// indexedStore owns one collection in insertion order plus a map per declared
// attribute from key to the ordered records sharing it.
//
// Every mutation rebuilds all indices under the write lock, so readers never
// observe a partially built index.
type indexedStore[T entities.Record[T]] struct {
	mu      sync.RWMutex
	schema  Schema[T]
	clock   clock.Clock
	records []T
	byID    map[int64]int
	indices map[string]map[string][]T
	// highWater is the largest id ever held; ids are never reused after a delete.
	highWater int64
}

func newIndexedStore[T entities.Record[T]](schema Schema[T], rows []entities.Row, clk clock.Clock) (*indexedStore[T], error) {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	s := &indexedStore[T]{
		schema:  schema,
		clock:   clk,
		records: make([]T, 0, len(rows)),
	}
	seen := make(map[int64]struct{}, len(rows))
	for i, row := range rows {
		rec, err := schema.Decode(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", schema.Kind, i+1, err)
		}
		id := rec.GetID()
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%s row %d: duplicate id %d", schema.Kind, i+1, id)
		}
		seen[id] = struct{}{}
		s.records = append(s.records, rec)
		if id > s.highWater {
			s.highWater = id
		}
	}
	s.rebuild()
	return s, nil
}

// rebuild regroups every record by every declared attribute. Callers hold mu.
func (s *indexedStore[T]) rebuild() {
	s.byID = make(map[int64]int, len(s.records))
	for pos, rec := range s.records {
		s.byID[rec.GetID()] = pos
	}

	s.indices = make(map[string]map[string][]T, len(s.schema.Indexes))
	for _, idx := range s.schema.Indexes {
		grouped := make(map[string][]T)
		for _, rec := range s.records {
			key := idx.Key(rec)
			grouped[key] = append(grouped[key], rec)
		}
		s.indices[idx.Attribute] = grouped
	}
}

func (s *indexedStore[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.records...)
}

func (s *indexedStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *indexedStore[T]) FindByID(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.records[pos], true
}

// FindAllBy returns the records whose attribute matches value, in insertion
// order. An undeclared attribute or an unknown value yields an empty slice.
func (s *indexedStore[T]) FindAllBy(attribute, value string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(attribute, s.normalize(attribute, value))
}

// findAllByKey looks up an already normalized key.
func (s *indexedStore[T]) findAllByKey(attribute, key string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(attribute, key)
}

// FindBy is FindAllBy narrowed to its first match.
func (s *indexedStore[T]) FindBy(attribute, value string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := s.lookup(attribute, s.normalize(attribute, value))
	if len(matches) == 0 {
		var zero T
		return zero, false
	}
	return matches[0], true
}

func (s *indexedStore[T]) normalize(attribute, value string) string {
	value = strings.TrimSpace(value)
	for _, idx := range s.schema.Indexes {
		if idx.Attribute == attribute && idx.Normalize != nil {
			return idx.Normalize(value)
		}
	}
	return value
}

func (s *indexedStore[T]) lookup(attribute, key string) []T {
	grouped, ok := s.indices[attribute]
	if !ok {
		return []T{}
	}
	return append([]T{}, grouped[key]...)
}

// filter scans the collection; used by fragment and range finders that a
// hash index cannot serve.
func (s *indexedStore[T]) filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []T{}
	for _, rec := range s.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Create assigns the next id, stamps created_at/updated_at and appends.
func (s *indexedStore[T]) Create(attrs entities.Row) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := make(entities.Row, len(attrs)+1)
	for k, v := range attrs {
		row[k] = v
	}
	id := s.highWater + 1
	row[entities.FieldID] = entities.IDKey(id)
	delete(row, entities.FieldCreatedAt)
	delete(row, entities.FieldUpdatedAt)

	rec, err := s.schema.Decode(row)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("create %s: %w", s.schema.Kind, err)
	}
	now := s.clock.Now()
	rec = rec.WithStamps(entities.Stamps{CreatedAt: now, UpdatedAt: now})

	s.records = append(s.records, rec)
	s.highWater = id
	s.rebuild()
	return rec, nil
}

// Update applies only the supplied fields. id and created_at are kept as they
// were whatever attrs says; updated_at is re-stamped.
func (s *indexedStore[T]) Update(id int64, attrs entities.Row) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	pos, ok := s.byID[id]
	if !ok {
		return zero, false, nil
	}
	current := s.records[pos]
	patched, err := current.Patch(attrs)
	if err != nil {
		return zero, true, fmt.Errorf("update %s %d: %w", s.schema.Kind, id, err)
	}
	stamps := current.GetStamps()
	stamps.UpdatedAt = s.clock.Now()
	patched = patched.WithID(current.GetID()).WithStamps(stamps)

	s.records[pos] = patched
	s.rebuild()
	return patched, true, nil
}

// Delete removes the record; a missing id is a no-op reported as false.
func (s *indexedStore[T]) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.byID[id]
	if !ok {
		return false
	}
	s.records = append(s.records[:pos], s.records[pos+1:]...)
	s.rebuild()
	return true
}

// Package store holds the ordered class/assignment collection and the
// operations that mutate it.
//
// A Store maps a class name to a model.ClassRecord while keeping insertion
// order: display order, persistence order, and "move up/down" all follow it.
// Every tag-addressed operation resolves its tag with a linear scan; the
// collection is expected to hold tens of classes, not thousands.
package store

import (
	"fmt"

	"github.com/idilsaglam/homework/internal/model"
)

// Entry is one class in display order.
type Entry struct {
	Name   string
	Record model.ClassRecord
}

// Store is an insertion-ordered mapping of class name to ClassRecord.
// The zero value is an empty, usable Store. It is not safe for concurrent use.
type Store struct {
	entries []Entry
}

// New returns an empty Store.
func New() *Store { return &Store{} }

// Len reports the number of classes.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns a deep copy of the classes in order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = Entry{Name: e.Name, Record: e.Record.Clone()}
	}
	return out
}

// HasName reports whether a class is filed under name.
func (s *Store) HasName(name string) bool {
	return s.indexOfName(name) >= 0
}

// Put files rec under name. An existing name keeps its position and has its
// record replaced; a new name is appended.
func (s *Store) Put(name string, rec model.ClassRecord) {
	if rec.Assignments == nil {
		rec.Assignments = []string{}
	}
	if i := s.indexOfName(name); i >= 0 {
		s.entries[i].Record = rec
		return
	}
	s.entries = append(s.entries, Entry{Name: name, Record: rec})
}

// FindByTag returns the first class (in order) whose tag equals tag. The
// returned record points into the Store and may be mutated in place.
func (s *Store) FindByTag(tag string) (string, *model.ClassRecord, bool) {
	i, ok := s.FindIndexByTag(tag)
	if !ok {
		return "", nil, false
	}
	return s.entries[i].Name, &s.entries[i].Record, true
}

// FindIndexByTag returns the 0-based position of the first class with tag.
func (s *Store) FindIndexByTag(tag string) (int, bool) {
	for i := range s.entries {
		if s.entries[i].Record.Tag == tag {
			return i, true
		}
	}
	return -1, false
}

// TagExists reports whether any class carries tag.
func (s *Store) TagExists(tag string) bool {
	_, ok := s.FindIndexByTag(tag)
	return ok
}

// DuplicateTags lists, in order of first appearance, every tag carried by
// more than one class. Operations never create duplicates; a hand-edited
// data file can.
func (s *Store) DuplicateTags() []string {
	seen := make(map[string]int, len(s.entries))
	var dups []string
	for _, e := range s.entries {
		seen[e.Record.Tag]++
		if seen[e.Record.Tag] == 2 {
			dups = append(dups, e.Record.Tag)
		}
	}
	return dups
}

// AddClass files a new class with no assignments under name. A name that is
// already present keeps its position and gets the fresh record.
func (s *Store) AddClass(name, tag string) error {
	if s.TagExists(tag) {
		return fmt.Errorf("add class %q: %w: %q", name, ErrTagAlreadyExists, tag)
	}
	s.Put(name, model.NewClassRecord(tag))
	return nil
}

// RemoveClass deletes the class carrying tag; later classes move up by one.
func (s *Store) RemoveClass(tag string) error {
	i, ok := s.FindIndexByTag(tag)
	if !ok {
		return fmt.Errorf("remove class: %w: %q", ErrClassNotFound, tag)
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}

// RenameTag changes the tag of the class carrying from. Renaming a tag to
// itself succeeds and changes nothing.
func (s *Store) RenameTag(from, to string) error {
	i, found := s.FindIndexByTag(from)
	if j, taken := s.FindIndexByTag(to); taken && (!found || j != i) {
		return fmt.Errorf("rename tag %q: %w: %q", from, ErrTagAlreadyExists, to)
	}
	if !found {
		return fmt.Errorf("rename tag: %w: %q", ErrClassNotFound, from)
	}
	s.entries[i].Record.Tag = to
	return nil
}

// MoveClass swaps the class carrying tag with its neighbour in direction dir.
func (s *Store) MoveClass(tag string, dir Direction) error {
	i, ok := s.FindIndexByTag(tag)
	if !ok {
		return fmt.Errorf("move class: %w: %q", ErrClassNotFound, tag)
	}
	j := i
	switch dir {
	case Up:
		j = i - 1
	case Down:
		j = i + 1
	default:
		return fmt.Errorf("move class %q: %w", tag, ErrInvalidMovementDirection)
	}
	if j < 0 || j >= len(s.entries) {
		return fmt.Errorf("move class %q %s from position %d: %w", tag, dir, i+1, ErrInvalidMovementDirection)
	}
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
	return nil
}

// AddAssignment appends text to the assignments of the class carrying tag.
func (s *Store) AddAssignment(tag, text string) error {
	_, rec, ok := s.FindByTag(tag)
	if !ok {
		return fmt.Errorf("add assignment: %w: %q", ErrClassNotFound, tag)
	}
	rec.Assignments = append(rec.Assignments, text)
	return nil
}

// RemoveAssignment removes the assignment at the 1-based position from the
// class carrying tag.
func (s *Store) RemoveAssignment(tag string, position int) error {
	_, rec, ok := s.FindByTag(tag)
	if !ok {
		return fmt.Errorf("remove assignment: %w: %q", ErrClassNotFound, tag)
	}
	idx := position - 1
	if idx < 0 || idx >= len(rec.Assignments) {
		return fmt.Errorf("remove assignment %d from %q (have %d): %w",
			position, tag, len(rec.Assignments), ErrInvalidAssignmentIndex)
	}
	rec.Assignments = append(rec.Assignments[:idx], rec.Assignments[idx+1:]...)
	return nil
}

// ClearAssignments empties the assignments of the class carrying tag.
func (s *Store) ClearAssignments(tag string) error {
	_, rec, ok := s.FindByTag(tag)
	if !ok {
		return fmt.Errorf("clear assignments: %w: %q", ErrClassNotFound, tag)
	}
	rec.Assignments = []string{}
	return nil
}

func (s *Store) indexOfName(name string) int {
	for i := range s.entries {
		if s.entries[i].Name == name {
			return i
		}
	}
	return -1
}

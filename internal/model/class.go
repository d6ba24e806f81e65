package model

// ClassRecord is the domain model for one class entry.
// The class name is not stored here; it is the key the Store files the record under.
type ClassRecord struct {
	Tag         string   `json:"tag" yaml:"tag"`
	Assignments []string `json:"assignments" yaml:"assignments"`
}

// NewClassRecord returns a record with an empty (non-nil) assignment list.
func NewClassRecord(tag string) ClassRecord {
	return ClassRecord{Tag: tag, Assignments: []string{}}
}

// Clone returns a deep copy so callers cannot alias the assignment slice.
func (c ClassRecord) Clone() ClassRecord {
	out := ClassRecord{Tag: c.Tag, Assignments: make([]string, len(c.Assignments))}
	copy(out.Assignments, c.Assignments)
	return out
}

package form

import "sync"

// State holds the current values of every form field. The section
// layout is fixed at construction; values change as transcripts are
// committed.
type State struct {
	sections []Section

	mu     sync.RWMutex
	values map[string]string
}

// NewState builds an empty state over the given form definition.
func NewState(sections []Section) *State {
	return &State{
		sections: sections,
		values:   make(map[string]string),
	}
}

// Sections returns the form layout.
func (s *State) Sections() []Section {
	return s.sections
}

// Get returns the current value of a field, or the empty string.
func (s *State) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores a field value.
func (s *State) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Clear removes a field value.
func (s *State) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Reset drops all values.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
}

// Values returns a copy of all set field values.
func (s *State) Values() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// ActiveFields returns every field currently visible, in form order.
// Fields whose Condition evaluates to false are skipped.
func (s *State) ActiveFields() []Field {
	var fields []Field
	for _, sec := range s.sections {
		for _, f := range sec.Fields {
			if f.Condition != nil && !f.Condition(s) {
				continue
			}
			fields = append(fields, f)
		}
	}
	return fields
}

// FieldByKey looks a field up by its key, visible or not.
func (s *State) FieldByKey(key string) (Field, bool) {
	for _, sec := range s.sections {
		for _, f := range sec.Fields {
			if f.Key == key {
				return f, true
			}
		}
	}
	return Field{}, false
}

// NextField returns the first visible field after the given one, in
// form order. ok is false when the given field is the last visible
// one or is unknown.
func (s *State) NextField(afterKey string) (Field, bool) {
	fields := s.ActiveFields()
	for i, f := range fields {
		if f.Key == afterKey && i+1 < len(fields) {
			return fields[i+1], true
		}
	}
	return Field{}, false
}

// FieldErrors runs every visible field's validation against the
// current value and returns the messages keyed by field. Optional
// fields are checked too, but their rules accept emptiness.
func (s *State) FieldErrors() map[string]string {
	errs := make(map[string]string)
	for _, f := range s.ActiveFields() {
		if f.Validate == nil {
			continue
		}
		if err := f.Validate(s.Get(f.Key)); err != nil {
			errs[f.Key] = err.Error()
		}
	}
	return errs
}

// Valid reports whether every visible field holds an acceptable
// value.
func (s *State) Valid() bool {
	return len(s.FieldErrors()) == 0
}

// File: tag.go
// Role: Tag, an optional diagnostic correlation identifier an
// ImmutableAutomaton can carry. Tags play no part in automaton semantics;
// they exist purely so a caller building and passing automata through
// several pipeline stages (builder → determinize → simplify) can trace
// one instance's provenance across logs without maintaining a side table.
package automaton

import "github.com/google/uuid"

// Tag is an opaque correlation identifier for one ImmutableAutomaton
// instance.
type Tag struct {
	id uuid.UUID
}

// NewTag allocates a fresh, random Tag.
func NewTag() Tag {
	return Tag{id: uuid.New()}
}

// String renders the tag's canonical textual form.
func (t Tag) String() string { return t.id.String() }

// IsZero reports whether t is the zero Tag (never returned by NewTag).
func (t Tag) IsZero() bool { return t.id == uuid.Nil }

// Tag returns the automaton's tag, if one has been set.
func (a *ImmutableAutomaton) Tag() Tag { return a.tag }

// SetTag records tag on the automaton, replacing any previous value.
func (a *ImmutableAutomaton) SetTag(tag Tag) { a.tag = tag }

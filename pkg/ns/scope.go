// Package ns implements the EXPRESS scope and path model described in
// ISO 10303-11 Table 9 ("Scope and identifier defining items"): a scope is
// an ordered sequence of (ScopeKind, name) pairs, and a path uniquely
// identifies a declaration by combining a scope, a kind, and a leaf name.
package ns

import (
	"fmt"
	"strings"
)

// ScopeKind is the closed enumeration of EXPRESS constructs that introduce
// a naming scope or a declaration within one.
type ScopeKind uint8

// The ten scope kinds named in ISO 10303-11 Table 9.
const (
	Entity ScopeKind = iota
	Alias
	Function
	Procedure
	Query
	Repeat
	Rule
	Schema
	SubType
	Type
)

var scopeKindNames = [...]string{
	"Entity", "Alias", "Function", "Procedure", "Query",
	"Repeat", "Rule", "Schema", "SubType", "Type",
}

// String renders a scope kind for diagnostics, e.g. "Entity".
func (k ScopeKind) String() string {
	if int(k) < len(scopeKindNames) {
		return scopeKindNames[k]
	}

	return fmt.Sprintf("ScopeKind(%d)", uint8(k))
}

// segment is one (kind, name) pair within a Scope.
type segment struct {
	kind ScopeKind
	name string
}

// Scope is an ordered sequence of (ScopeKind, name) pairs. The root scope
// is the empty sequence. Scope equality is structural.
type Scope struct {
	segments []segment
}

// Root returns the empty, top-level scope.
func Root() Scope {
	return Scope{}
}

// Pushed returns a new scope extending this one with one more segment.
func (s Scope) Pushed(kind ScopeKind, name string) Scope {
	next := make([]segment, len(s.segments), len(s.segments)+1)
	copy(next, s.segments)

	return Scope{append(next, segment{kind, name})}
}

// Popped returns the scope with its last segment removed, and false if s is
// already the root.
func (s Scope) Popped() (Scope, bool) {
	if len(s.segments) == 0 {
		return s, false
	}

	return Scope{s.segments[:len(s.segments)-1]}, true
}

// Depth returns the number of segments in this scope.
func (s Scope) Depth() int {
	return len(s.segments)
}

// Ancestor returns the prefix of this scope truncated to the given depth.
// Ancestor(0) is always the root scope.
func (s Scope) Ancestor(depth int) Scope {
	if depth >= len(s.segments) {
		return s
	}

	return Scope{s.segments[:depth]}
}

// At returns the (kind, name) pair at the given depth (0-indexed, where 0
// is the outermost segment), and false if depth is out of range.
func (s Scope) At(depth int) (ScopeKind, string, bool) {
	if depth < 0 || depth >= len(s.segments) {
		return 0, "", false
	}

	seg := s.segments[depth]

	return seg.kind, seg.name, true
}

// Equal reports whether two scopes are structurally identical.
func (s Scope) Equal(o Scope) bool {
	if len(s.segments) != len(o.segments) {
		return false
	}

	for i := range s.segments {
		if s.segments[i] != o.segments[i] {
			return false
		}
	}

	return true
}

// LessEqual implements the partial order "a <= b iff a's sequence is a
// prefix of b's" (b is inside a, i.e. a is an ancestor scope of b).
func (s Scope) LessEqual(o Scope) bool {
	if len(s.segments) > len(o.segments) {
		return false
	}

	for i := range s.segments {
		if s.segments[i] != o.segments[i] {
			return false
		}
	}

	return true
}

// String renders a scope in dotted form, e.g. "schema1.entity1", matching
// the original EXPRESS compiler's Display implementation for Scope.
func (s Scope) String() string {
	names := make([]string, len(s.segments))
	for i, seg := range s.segments {
		names[i] = seg.name
	}

	return strings.Join(names, ".")
}

// Key returns a stable string encoding of this scope, suitable for use as a
// map key: Scope itself holds a slice field and so is not comparable.
// Unlike String(), Key() is unambiguous (a 0x1f separator follows every
// segment, including the last) and is not meant for display.
func (s Scope) Key() string {
	var b strings.Builder

	for _, seg := range s.segments {
		b.WriteByte(byte(seg.kind))
		b.WriteString(seg.name)
		b.WriteByte(0x1f)
	}

	return b.String()
}

// Path is (scope, kind, leaf-name): it uniquely identifies a declaration.
type Path struct {
	Scope Scope
	Kind  ScopeKind
	Name  string
}

// NewPath constructs a path from its three components.
func NewPath(scope Scope, kind ScopeKind, name string) Path {
	return Path{scope, kind, name}
}

// Equal reports whether two paths identify the same declaration.
func (p Path) Equal(o Path) bool {
	return p.Kind == o.Kind && p.Name == o.Name && p.Scope.Equal(o.Scope)
}

// String renders a path as "scope.name", matching the original compiler's
// Display implementation for Path.
func (p Path) String() string {
	if p.Scope.Depth() == 0 {
		return p.Name
	}

	return fmt.Sprintf("%s.%s", p.Scope.String(), p.Name)
}

// Key returns a stable string encoding of this path, suitable for use as a
// map key in place of Path itself (not comparable, since Scope holds a
// slice field). Not meant for display — use String() for that.
func (p Path) Key() string {
	return p.Scope.Key() + string(byte(p.Kind)) + "\x1f" + p.Name
}

// Package namespace implements the global, append-only declaration index
// described in spec §4.1: every declaration in every schema is assigned a
// stable dense integer index, and identifiers are resolved to indices by
// walking outward from a query scope.
package namespace

import (
	"github.com/anandijain/espr/pkg/diag"
	"github.com/anandijain/espr/pkg/ns"
	"github.com/anandijain/espr/pkg/source"
)

// Node is the minimal interface a referenced AST declaration must satisfy:
// enough to report a diagnostic span against it. Concrete AST node types
// (in pkg/ast) satisfy this directly.
type Node interface {
	Span() source.Span
}

type entry struct {
	path ns.Path
	node Node
}

// Namespace is the frozen, bijective mapping between paths and dense
// indices described in spec §3/§4.1. It is built once by repeated Insert
// calls and then used read-only for Lookup; per spec §5 no mutation occurs
// after the build pass completes.
//
// byPath is keyed on ns.Path.Key() rather than ns.Path itself: Path embeds
// Scope, which holds a slice field, so neither is a valid Go map key.
type Namespace struct {
	entries []entry
	byPath  map[string]int
}

// New constructs an empty namespace.
func New() *Namespace {
	return &Namespace{
		byPath: make(map[string]int),
	}
}

// Insert records a new declaration at path, returning its freshly assigned
// index. If a conflicting entry already exists at the same path (same
// scope, kind, and name), it returns a DuplicatePath diagnostic instead and
// leaves the namespace unchanged.
func (n *Namespace) Insert(path ns.Path, node Node) (int, *diag.Diagnostic) {
	key := path.Key()

	if existing, ok := n.byPath[key]; ok {
		return -1, diag.DuplicatePath(path, node.Span(), n.entries[existing].node.Span())
	}

	idx := len(n.entries)
	n.entries = append(n.entries, entry{path, node})
	n.byPath[key] = idx

	return idx, nil
}

// Indexed returns the path and AST node recorded at index i. It is total
// for 0 <= i < n.Len().
func (n *Namespace) Indexed(i int) (ns.Path, Node) {
	e := n.entries[i]
	return e.path, e.node
}

// Len returns the number of declarations recorded in this namespace.
func (n *Namespace) Len() int {
	return len(n.entries)
}

// Lookup resolves identifier as seen from scope, restricted to the given
// kind (e.g. a supertype reference expects Entity, a type reference expects
// Type). Resolution walks from scope outward to the root, returning the
// first (closest) match; if none is found along the chain, it fails with
// Unresolved (spec §4.1).
func (n *Namespace) Lookup(scope ns.Scope, kind ns.ScopeKind, identifier string, site source.Span) (int, *diag.Diagnostic) {
	for candidate := scope; ; {
		path := ns.NewPath(candidate, kind, identifier)
		if idx, ok := n.byPath[path.Key()]; ok {
			return idx, nil
		}

		popped, ok := candidate.Popped()
		if !ok {
			break
		}

		candidate = popped
	}

	return -1, diag.Unresolved(scope, identifier, site)
}

// Package lattice defines the compiler's intermediate representation: the
// stable, closed-shape contract handed to the code-generator collaborator
// (spec §4.6/§6). Nothing outside pkg/compiler constructs these values;
// downstream consumers treat them as read-only.
//
// Named lattice rather than ir: the teacher's own pkg/ir is a large,
// unrelated finite-field constraint-IR tree (Add/Mul/Ite/LessThan term
// nodes for zkEVM circuits) that this repository's SPEC_FULL.md does not
// reuse — see DESIGN.md's "Dropped/adapted teacher modules" entry. Reusing
// its package path would collide with that tree rather than replace it
// before the final adaptation pass.
package lattice

import (
	"github.com/anandijain/espr/pkg/algebra"
	"github.com/anandijain/espr/pkg/ast"
	"github.com/anandijain/espr/pkg/ns"
	"github.com/google/uuid"
)

// Attribute is a single resolved (name, type) pair on an entity. Type is
// the path of the TYPE or ENTITY declaration this attribute's type name
// resolved to.
type Attribute struct {
	Name string
	Type ns.Path
}

// Entity is the compiled form of an EXPRESS ENTITY declaration: its name,
// scope, resolved supertype paths, attributes, subtype constraint
// expression, and the normalized Instantiables set computed for it (spec
// §3 "Entity IR").
type Entity struct {
	Name         string
	Scope        ns.Scope
	Index        int
	Attributes   []Attribute
	Supertypes   []ns.Path
	Constraint   *ConstraintExpr
	Instantiable algebra.Instantiables
}

// ConstraintExpr is the lowered, index-resolved form of an AST
// ConstraintExpr (spec §3/§4.2): every Reference carries a resolved
// namespace index rather than a source identifier.
type ConstraintExpr struct {
	Kind      ConstraintKind
	Reference int // valid when Kind == ConstraintReference
	Operands  []*ConstraintExpr
}

// ConstraintKind mirrors ast.ConstraintExpr's closed variant set, now over
// resolved data rather than AST nodes.
type ConstraintKind uint8

// The four lowered constraint-expression forms.
const (
	ConstraintReference ConstraintKind = iota
	ConstraintOneOf
	ConstraintAnd
	ConstraintAndOr
)

// TypeDecl is the compiled form of an EXPRESS TYPE declaration: same shape
// as ast.TypeDecl, but with Named/Select references resolved to namespace
// indices instead of bare identifiers.
type TypeDecl struct {
	Name               string
	Kind               ast.TypeKind
	SimpleKind         ast.SimpleKind
	NamedRef           int // namespace index, valid when Kind == ast.Named
	SelectAlternatives []int
	EnumerationLabels  []string
	AggregateKind      ast.AggregateKind
	AggregateElement   *TypeDecl
	LowerBound         *int
	UpperBound         *int
}

// Schema is the compiled, per-schema output bound into the code-generator
// contract (spec §4.6). BuildID is a SPEC_FULL.md addition: a stable
// per-compile correlation handle, not part of the algebraic core.
type Schema struct {
	Name     string
	BuildID  uuid.UUID
	Types    []*TypeDecl
	Entities []*Entity
	// Instantiable is the per-schema rollup (spec §4.5): the union, over
	// every root entity (an entity with no supertype), of that entity's
	// Instantiable set — the complete collection of distinct
	// partial-complex entities the schema may serialize.
	Instantiable algebra.Instantiables
}

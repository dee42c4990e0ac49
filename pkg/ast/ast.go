// Package ast defines the upstream AST contract the subtype-lattice
// compiler consumes (spec §6): the shape an EXPRESS lexer/parser is
// expected to produce. The parser itself is an external collaborator and
// out of scope here; this package exists so the compiler core is
// compilable and testable standalone, plus a minimal in-memory Builder
// (build.go) for constructing fixtures without a real parser.
package ast

import "github.com/anandijain/espr/pkg/source"

// Node is the minimal capability every AST element provides: a source span
// for diagnostic reporting.
type Node interface {
	Span() source.Span
}

// Identifier is a bare name reference as written in the source text, e.g.
// the "B" in "SUBTYPE OF (B)" or a type name in an attribute declaration.
// It is not yet resolved to anything in the namespace.
type Identifier struct {
	Name     string
	SpanInfo source.Span
}

// Span implements Node.
func (i Identifier) Span() source.Span { return i.SpanInfo }

// Schema is a single EXPRESS SCHEMA declaration.
type Schema struct {
	Name     string
	SpanInfo source.Span
	Types    []*TypeDecl
	Entities []*Entity
	Remarks  []string
}

// Span implements Node.
func (s *Schema) Span() source.Span { return s.SpanInfo }

// Attribute is one (name, type) pair of an entity.
type Attribute struct {
	Name     string
	Type     Identifier
	SpanInfo source.Span
}

// Span implements Node.
func (a Attribute) Span() source.Span { return a.SpanInfo }

// Entity is a single EXPRESS ENTITY declaration.
type Entity struct {
	Name       string
	SpanInfo   source.Span
	Attributes []Attribute
	// Supertypes lists the entities named in a "SUBTYPE OF (...)" clause:
	// every instance of this entity must also include each of these.
	Supertypes []Identifier
	// Constraint is the (optional) "SUPERTYPE OF (...)" expression
	// governing which subtypes may co-instantiate with this entity.
	Constraint ConstraintExpr
}

// Span implements Node.
func (e *Entity) Span() source.Span { return e.SpanInfo }

// HasConstraint reports whether this entity declares a SUPERTYPE OF clause.
func (e *Entity) HasConstraint() bool { return e.Constraint != nil }

// ConstraintExpr is the closed set of SUPERTYPE OF constraint-expression
// nodes (spec §3/§6), expressed over source identifiers rather than
// resolved namespace indices — resolution into the compiler's own
// constraint representation is constraint lowering (spec §4.2), performed
// by pkg/compiler.
//
// The unexported method seals ConstraintExpr to the four variants defined
// in this file, so a type switch over them is exhaustive by construction.
type ConstraintExpr interface {
	Node
	isConstraintExpr()
}

// Reference names a single supertype within a constraint expression.
type Reference struct {
	Name     Identifier
	SpanInfo source.Span
}

func (Reference) isConstraintExpr()   {}
func (r Reference) Span() source.Span { return r.SpanInfo }

// OneOf represents ONEOF(...): mutually exclusive alternatives.
type OneOf struct {
	Operands []ConstraintExpr
	SpanInfo source.Span
}

func (OneOf) isConstraintExpr()   {}
func (o OneOf) Span() source.Span { return o.SpanInfo }

// And represents simultaneous instantiation of every operand.
type And struct {
	Operands []ConstraintExpr
	SpanInfo source.Span
}

func (And) isConstraintExpr()   {}
func (a And) Span() source.Span { return a.SpanInfo }

// AndOr represents ANDOR(...): any non-empty subset of operands may
// co-instantiate.
type AndOr struct {
	Operands []ConstraintExpr
	SpanInfo source.Span
}

func (AndOr) isConstraintExpr()   {}
func (a AndOr) Span() source.Span { return a.SpanInfo }

// TypeKind is the closed enumeration of EXPRESS underlying-type forms named
// in spec §6.
type TypeKind uint8

// The five underlying-type forms.
const (
	// Simple is a built-in primitive: Integer, Real, String, Boolean,
	// Logical, or Binary.
	Simple TypeKind = iota
	// Named refers to another declared TYPE or ENTITY by name.
	Named
	// Select is a SELECT type: a union over a list of named alternatives.
	Select
	// Enumeration is an ENUMERATION OF (...) type: a closed list of labels.
	Enumeration
	// Aggregate is an ARRAY/LIST/SET/BAG OF type, with an element type and
	// optional bounds.
	Aggregate
)

// SimpleKind is the closed enumeration of EXPRESS built-in primitive types.
type SimpleKind uint8

// The six EXPRESS primitive types.
const (
	IntegerKind SimpleKind = iota
	RealKind
	StringKind
	BooleanKind
	LogicalKind
	BinaryKind
)

// AggregateKind is the closed enumeration of EXPRESS aggregation forms.
type AggregateKind uint8

// The four EXPRESS aggregation forms.
const (
	ArrayKind AggregateKind = iota
	ListKind
	SetKind
	BagKind
)

// TypeDecl is a single EXPRESS TYPE declaration: a name bound to one
// underlying form. Exactly one of the Simple/Named/Select/Enumeration/
// Aggregate fields is meaningful, selected by Kind — this is a tagged
// union rather than a sealed interface because every variant shares the
// same (Name, SpanInfo) envelope and callers almost always want Kind
// dispatch rather than node-level polymorphism.
type TypeDecl struct {
	Name     string
	SpanInfo source.Span
	Kind     TypeKind

	// Populated when Kind == Simple.
	SimpleKind SimpleKind

	// Populated when Kind == Named.
	NamedRef Identifier

	// Populated when Kind == Select.
	SelectAlternatives []Identifier

	// Populated when Kind == Enumeration.
	EnumerationLabels []string

	// Populated when Kind == Aggregate.
	AggregateKind    AggregateKind
	AggregateElement *TypeDecl
	LowerBound       *int
	UpperBound       *int
}

// Span implements Node.
func (t *TypeDecl) Span() source.Span { return t.SpanInfo }

package ast

import "github.com/anandijain/espr/pkg/source"

// Builder provides a fluent, in-memory way to assemble Schema values
// directly — standing in for a real EXPRESS parser, which is out of scope
// here (spec §6 describes this package's types as the parser's output
// contract, not the parser itself).
type Builder struct {
	schema *Schema
}

// NewBuilder starts a new schema with the given name and span.
func NewBuilder(name string, span source.Span) *Builder {
	return &Builder{schema: &Schema{Name: name, SpanInfo: span}}
}

// Type registers a type declaration on the schema under construction.
func (b *Builder) Type(t *TypeDecl) *Builder {
	b.schema.Types = append(b.schema.Types, t)
	return b
}

// Entity registers an entity declaration on the schema under construction.
func (b *Builder) Entity(e *Entity) *Builder {
	b.schema.Entities = append(b.schema.Entities, e)
	return b
}

// Remark attaches a free-text remark to the schema under construction.
func (b *Builder) Remark(text string) *Builder {
	b.schema.Remarks = append(b.schema.Remarks, text)
	return b
}

// Build returns the assembled schema.
func (b *Builder) Build() *Schema {
	return b.schema
}

// NewEntity constructs an entity with the given name, span, and attributes.
func NewEntity(name string, span source.Span, attrs ...Attribute) *Entity {
	return &Entity{Name: name, SpanInfo: span, Attributes: attrs}
}

// WithSupertypes returns e with its Supertypes list set, for chaining at
// construction time.
func (e *Entity) WithSupertypes(supertypes ...Identifier) *Entity {
	e.Supertypes = supertypes
	return e
}

// WithConstraint returns e with its SUPERTYPE OF constraint set, for
// chaining at construction time.
func (e *Entity) WithConstraint(c ConstraintExpr) *Entity {
	e.Constraint = c
	return e
}

// Ident constructs an Identifier from a bare name and span, a small
// convenience used throughout hand-built fixtures and tests.
func Ident(name string, span source.Span) Identifier {
	return Identifier{Name: name, SpanInfo: span}
}

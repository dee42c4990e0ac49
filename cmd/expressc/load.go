package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anandijain/espr/pkg/ast"
	"github.com/anandijain/espr/pkg/source"
)

// The JSON shapes below are this CLI's stand-in for a real EXPRESS lexer/
// parser (out of scope per spec §1/§6 — "the lexer/parser that produces
// the AST from EXPRESS source text" is an external collaborator). They are
// a minimal, explicit wire format for feeding pkg/ast fixtures to the
// compiler from a file, not a claim of EXPRESS-source compatibility.
type wireSchema struct {
	Name     string         `json:"name"`
	Types    []wireType     `json:"types"`
	Entities []wireEntity   `json:"entities"`
	Remarks  []string       `json:"remarks"`
}

type wireType struct {
	Name        string          `json:"name"`
	Kind        string          `json:"kind"` // simple|named|select|enumeration|aggregate
	Simple      string          `json:"simple,omitempty"`
	Named       string          `json:"named,omitempty"`
	Select      []string        `json:"select,omitempty"`
	Enumeration []string        `json:"enumeration,omitempty"`
	Aggregate   *wireAggregate  `json:"aggregate,omitempty"`
}

type wireAggregate struct {
	Kind    string   `json:"kind"` // array|list|set|bag
	Element wireType `json:"element"`
	Lower   *int     `json:"lower,omitempty"`
	Upper   *int     `json:"upper,omitempty"`
}

type wireEntity struct {
	Name       string          `json:"name"`
	Attributes []wireAttribute `json:"attributes"`
	Supertypes []string        `json:"supertypes"`
	Constraint *wireConstraint `json:"constraint,omitempty"`
}

type wireAttribute struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type wireConstraint struct {
	Kind      string           `json:"kind"` // reference|oneof|and|andor
	Reference string           `json:"reference,omitempty"`
	Operands  []wireConstraint `json:"operands,omitempty"`
}

// loadSchemas parses each named file as a wireSchema and converts it to
// pkg/ast. Spans are synthetic (one monotonic counter per file): there is
// no real source text to slice, only JSON structure, but every node still
// carries a span per spec §6's "source spans on every node" contract.
func loadSchemas(paths []string) ([]*ast.Schema, error) {
	schemas := make([]*ast.Schema, 0, len(paths))

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		var w wireSchema
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		schemas = append(schemas, convertSchema(w))
	}

	return schemas, nil
}

type spanCounter struct{ n int }

func (s *spanCounter) next() source.Span {
	span := source.NewSpan(s.n, s.n+1)
	s.n++

	return span
}

func convertSchema(w wireSchema) *ast.Schema {
	sc := &spanCounter{}
	b := ast.NewBuilder(w.Name, sc.next())

	for _, t := range w.Types {
		b.Type(convertType(t, sc))
	}

	for _, e := range w.Entities {
		b.Entity(convertEntity(e, sc))
	}

	for _, r := range w.Remarks {
		b.Remark(r)
	}

	return b.Build()
}

func convertEntity(e wireEntity, sc *spanCounter) *ast.Entity {
	attrs := make([]ast.Attribute, len(e.Attributes))
	for i, a := range e.Attributes {
		span := sc.next()
		attrs[i] = ast.Attribute{Name: a.Name, Type: ast.Ident(a.Type, span), SpanInfo: span}
	}

	entity := ast.NewEntity(e.Name, sc.next(), attrs...)

	if len(e.Supertypes) > 0 {
		supertypes := make([]ast.Identifier, len(e.Supertypes))
		for i, name := range e.Supertypes {
			supertypes[i] = ast.Ident(name, sc.next())
		}

		entity = entity.WithSupertypes(supertypes...)
	}

	if e.Constraint != nil {
		entity = entity.WithConstraint(convertConstraint(*e.Constraint, sc))
	}

	return entity
}

func convertConstraint(w wireConstraint, sc *spanCounter) ast.ConstraintExpr {
	span := sc.next()

	switch w.Kind {
	case "reference":
		return ast.Reference{Name: ast.Ident(w.Reference, span), SpanInfo: span}
	case "oneof":
		return ast.OneOf{Operands: convertOperands(w.Operands, sc), SpanInfo: span}
	case "and":
		return ast.And{Operands: convertOperands(w.Operands, sc), SpanInfo: span}
	case "andor":
		return ast.AndOr{Operands: convertOperands(w.Operands, sc), SpanInfo: span}
	default:
		return ast.Reference{Name: ast.Ident(w.Kind, span), SpanInfo: span}
	}
}

func convertOperands(ws []wireConstraint, sc *spanCounter) []ast.ConstraintExpr {
	out := make([]ast.ConstraintExpr, len(ws))
	for i, w := range ws {
		out[i] = convertConstraint(w, sc)
	}

	return out
}

func convertType(w wireType, sc *spanCounter) *ast.TypeDecl {
	span := sc.next()
	out := &ast.TypeDecl{Name: w.Name, SpanInfo: span}

	switch w.Kind {
	case "simple":
		out.Kind = ast.Simple
		out.SimpleKind = simpleKindOf(w.Simple)
	case "named":
		out.Kind = ast.Named
		out.NamedRef = ast.Ident(w.Named, sc.next())
	case "select":
		out.Kind = ast.Select
		out.SelectAlternatives = make([]ast.Identifier, len(w.Select))
		for i, name := range w.Select {
			out.SelectAlternatives[i] = ast.Ident(name, sc.next())
		}
	case "enumeration":
		out.Kind = ast.Enumeration
		out.EnumerationLabels = w.Enumeration
	case "aggregate":
		out.Kind = ast.Aggregate
		out.AggregateKind = aggregateKindOf(w.Aggregate.Kind)
		out.AggregateElement = convertType(w.Aggregate.Element, sc)
		out.LowerBound = w.Aggregate.Lower
		out.UpperBound = w.Aggregate.Upper
	}

	return out
}

func simpleKindOf(name string) ast.SimpleKind {
	switch name {
	case "real":
		return ast.RealKind
	case "string":
		return ast.StringKind
	case "boolean":
		return ast.BooleanKind
	case "logical":
		return ast.LogicalKind
	case "binary":
		return ast.BinaryKind
	default:
		return ast.IntegerKind
	}
}

func aggregateKindOf(name string) ast.AggregateKind {
	switch name {
	case "list":
		return ast.ListKind
	case "set":
		return ast.SetKind
	case "bag":
		return ast.BagKind
	default:
		return ast.ArrayKind
	}
}

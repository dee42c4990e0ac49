package ast

import (
	"testing"

	"github.com/anandijain/espr/pkg/source"
	"github.com/stretchr/testify/assert"
)

func TestBuilderAssemblesSchema(t *testing.T) {
	span := source.NewSpan(0, 1)

	point := NewEntity("point", span,
		Attribute{Name: "x", Type: Ident("Integer", span), SpanInfo: span},
		Attribute{Name: "y", Type: Ident("Integer", span), SpanInfo: span},
	)

	schema := NewBuilder("geometry", span).
		Entity(point).
		Remark("distilled fixture").
		Build()

	assert.Equal(t, "geometry", schema.Name)
	assert.Len(t, schema.Entities, 1)
	assert.Equal(t, "point", schema.Entities[0].Name)
	assert.Len(t, schema.Entities[0].Attributes, 2)
	assert.Equal(t, []string{"distilled fixture"}, schema.Remarks)
	assert.False(t, schema.Entities[0].HasConstraint())
}

func TestWithSupertypesAndConstraintChain(t *testing.T) {
	span := source.NewSpan(0, 1)

	b := NewEntity("b", span).WithSupertypes(Ident("a", span))
	assert.Equal(t, []Identifier{Ident("a", span)}, b.Supertypes)
	assert.False(t, b.HasConstraint())

	a := NewEntity("a", span).WithConstraint(OneOf{
		SpanInfo: span,
		Operands: []ConstraintExpr{
			Reference{Name: Ident("b", span), SpanInfo: span},
			Reference{Name: Ident("c", span), SpanInfo: span},
		},
	})

	assert.True(t, a.HasConstraint())

	oneOf, ok := a.Constraint.(OneOf)
	assert.True(t, ok)
	assert.Len(t, oneOf.Operands, 2)
}

func TestConstraintExprVariantsSatisfySealedInterface(t *testing.T) {
	span := source.NewSpan(0, 1)

	var variants = []ConstraintExpr{
		Reference{Name: Ident("a", span), SpanInfo: span},
		OneOf{SpanInfo: span, Operands: []ConstraintExpr{Reference{Name: Ident("a", span), SpanInfo: span}}},
		And{SpanInfo: span, Operands: []ConstraintExpr{Reference{Name: Ident("a", span), SpanInfo: span}}},
		AndOr{SpanInfo: span, Operands: []ConstraintExpr{Reference{Name: Ident("a", span), SpanInfo: span}}},
	}

	for _, v := range variants {
		assert.Equal(t, span, v.Span())
	}
}

func TestTypeDeclSpan(t *testing.T) {
	span := source.NewSpan(3, 9)
	td := &TypeDecl{Name: "Label", SpanInfo: span, Kind: Simple, SimpleKind: StringKind}
	assert.Equal(t, span, td.Span())
}

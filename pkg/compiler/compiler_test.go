package compiler

import (
	"testing"

	"github.com/anandijain/espr/pkg/algebra"
	"github.com/anandijain/espr/pkg/ast"
	"github.com/anandijain/espr/pkg/diag"
	"github.com/anandijain/espr/pkg/lattice"
	"github.com/anandijain/espr/pkg/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFind(t *testing.T, entities []*lattice.Entity, name string) *lattice.Entity {
	t.Helper()

	for _, e := range entities {
		if e.Name == name {
			return e
		}
	}

	t.Fatalf("entity %q not found", name)

	return nil
}

// Scenario S7: ENTITY A; ENTITY B SUBTYPE OF (A); ENTITY C SUBTYPE OF (A);
// ENTITY A SUPERTYPE OF (ONEOF (B, C)); produces
// I_A = [{A,B},{A,C}], I_B = [{A,B}], I_C = [{A,C}].
func TestScenarioS7EntitySubtypeCompilation(t *testing.T) {
	span := source.NewSpan(0, 1)

	entityA := ast.NewEntity("A", span).WithConstraint(ast.OneOf{
		SpanInfo: span,
		Operands: []ast.ConstraintExpr{
			ast.Reference{Name: ast.Ident("B", span), SpanInfo: span},
			ast.Reference{Name: ast.Ident("C", span), SpanInfo: span},
		},
	})
	entityB := ast.NewEntity("B", span).WithSupertypes(ast.Ident("A", span))
	entityC := ast.NewEntity("C", span).WithSupertypes(ast.Ident("A", span))

	schema := ast.NewBuilder("s", span).
		Entity(entityA).
		Entity(entityB).
		Entity(entityC).
		Build()

	schemas, errs := Compile(CompilationConfig{}, []*ast.Schema{schema})
	require.Nil(t, errs)
	require.Len(t, schemas, 1)

	out := schemas[0]

	a := mustFind(t, out.Entities, "A")
	b := mustFind(t, out.Entities, "B")
	c := mustFind(t, out.Entities, "C")

	assert.True(t, a.Instantiable.Equal(pceSet([][]int{{0, 1}, {0, 2}})))
	assert.True(t, b.Instantiable.Equal(pceSet([][]int{{0, 1}})))
	assert.True(t, c.Instantiable.Equal(pceSet([][]int{{0, 2}})))
	assert.True(t, out.Instantiable.Equal(a.Instantiable), "schema rollup is the union over root entities")
}

// Scenario S8: ENTITY A SUBTYPE OF (B); ENTITY B SUBTYPE OF (A); yields a
// CyclicSupertype diagnostic.
func TestScenarioS8CyclicSupertype(t *testing.T) {
	span := source.NewSpan(0, 1)

	entityA := ast.NewEntity("A", span).WithSupertypes(ast.Ident("B", span))
	entityB := ast.NewEntity("B", span).WithSupertypes(ast.Ident("A", span))

	schema := ast.NewBuilder("s", span).
		Entity(entityA).
		Entity(entityB).
		Build()

	_, errs := Compile(CompilationConfig{}, []*ast.Schema{schema})
	require.NotEmpty(t, errs)

	found := false

	for _, d := range errs {
		if d.Is(diag.KindCyclicSupertype) {
			found = true
		}
	}

	assert.True(t, found, "expected a CyclicSupertype diagnostic")
}

func pceSet(indexSets [][]int) algebra.Instantiables {
	parts := make([]algebra.PartialComplexEntity, len(indexSets))
	for i, indices := range indexSets {
		parts[i] = algebra.NewPCE(indices...)
	}

	return algebra.NewInstantiables(parts...)
}

package compiler

import (
	"fmt"

	"github.com/anandijain/espr/pkg/algebra"
	"github.com/anandijain/espr/pkg/ast"
	"github.com/anandijain/espr/pkg/diag"
	"github.com/anandijain/espr/pkg/lattice"
	"github.com/anandijain/espr/pkg/namespace"
	"github.com/anandijain/espr/pkg/ns"
	"github.com/anandijain/espr/pkg/source"
)

// lowerConstraintExpr translates an AST SUPERTYPE OF expression into its
// resolved lattice.ConstraintExpr tree and the Instantiables it denotes (spec
// §4.2, §4.4 "Lowering from ConstraintExpr"): Reference(path) becomes
// single(index(path)); And/OneOf/AndOr recurse into their operands and
// then apply the matching combinator.
//
// On any unresolved operand the whole subtree is abandoned (nil, zero
// value) after reporting a diagnostic — per spec §7's propagation policy
// the caller keeps lowering sibling subtrees rather than aborting the
// compile outright; the compile only fails once all passes complete and
// the collector is non-empty.
func lowerConstraintExpr(nsTable *namespace.Namespace, scope ns.Scope, c ast.ConstraintExpr, collector *diag.Collector) (*lattice.ConstraintExpr, algebra.Instantiables) {
	switch n := c.(type) {
	case ast.Reference:
		idx, derr := nsTable.Lookup(scope, ns.Entity, n.Name.Name, n.Span())
		if derr != nil {
			collector.Report(derr)
			return nil, algebra.Instantiables{}
		}

		return &lattice.ConstraintExpr{Kind: lattice.ConstraintReference, Reference: idx}, algebra.Single(idx)

	case ast.OneOf:
		return lowerCombinator(nsTable, scope, lattice.ConstraintOneOf, n.Operands, n.SpanInfo, collector, algebra.Oneof)

	case ast.And:
		if len(n.Operands) < 2 {
			collector.Report(diag.EmptyConstraint(scope, n.SpanInfo))
			return nil, algebra.Instantiables{}
		}

		return lowerCombinator(nsTable, scope, lattice.ConstraintAnd, n.Operands, n.SpanInfo, collector, algebra.And)

	case ast.AndOr:
		return lowerCombinator(nsTable, scope, lattice.ConstraintAndOr, n.Operands, n.SpanInfo, collector, algebra.AndOr)

	default:
		collector.Report(diag.Internal(fmt.Sprintf("unhandled ConstraintExpr variant %T", c)))
		return nil, algebra.Instantiables{}
	}
}

func lowerCombinator(
	nsTable *namespace.Namespace,
	scope ns.Scope,
	kind lattice.ConstraintKind,
	operands []ast.ConstraintExpr,
	span source.Span,
	collector *diag.Collector,
	combine func([]algebra.Instantiables) algebra.Instantiables,
) (*lattice.ConstraintExpr, algebra.Instantiables) {
	if len(operands) == 0 {
		collector.Report(diag.EmptyConstraint(scope, span))
		return nil, algebra.Instantiables{}
	}

	nodes := make([]*lattice.ConstraintExpr, 0, len(operands))
	insts := make([]algebra.Instantiables, 0, len(operands))

	for _, op := range operands {
		node, inst := lowerConstraintExpr(nsTable, scope, op, collector)
		if node == nil {
			continue
		}

		nodes = append(nodes, node)
		insts = append(insts, inst)
	}

	if len(insts) != len(operands) {
		return nil, algebra.Instantiables{}
	}

	return &lattice.ConstraintExpr{Kind: kind, Operands: nodes}, combine(insts)
}

// lowerType resolves a TYPE declaration's underlying form, leaving Named
// and Select references as namespace indices (spec §6's Named/Select
// underlying forms).
func lowerType(nsTable *namespace.Namespace, scope ns.Scope, t *ast.TypeDecl, collector *diag.Collector) *lattice.TypeDecl {
	out := &lattice.TypeDecl{
		Name:              t.Name,
		Kind:              t.Kind,
		SimpleKind:        t.SimpleKind,
		EnumerationLabels: t.EnumerationLabels,
		AggregateKind:     t.AggregateKind,
		LowerBound:        t.LowerBound,
		UpperBound:        t.UpperBound,
	}

	switch t.Kind {
	case ast.Named:
		out.NamedRef = resolveIndex(nsTable, scope, t.NamedRef, collector)
	case ast.Select:
		out.SelectAlternatives = make([]int, 0, len(t.SelectAlternatives))
		for _, alt := range t.SelectAlternatives {
			out.SelectAlternatives = append(out.SelectAlternatives, resolveIndex(nsTable, scope, alt, collector))
		}
	case ast.Aggregate:
		if t.AggregateElement != nil {
			out.AggregateElement = lowerType(nsTable, scope, t.AggregateElement, collector)
		}
	}

	return out
}

func resolveIndex(nsTable *namespace.Namespace, scope ns.Scope, ident ast.Identifier, collector *diag.Collector) int {
	if idx, derr := nsTable.Lookup(scope, ns.Type, ident.Name, ident.SpanInfo); derr == nil {
		return idx
	}

	if idx, derr := nsTable.Lookup(scope, ns.Entity, ident.Name, ident.SpanInfo); derr == nil {
		return idx
	}

	collector.Report(diag.Unresolved(scope, ident.Name, ident.SpanInfo))

	return -1
}

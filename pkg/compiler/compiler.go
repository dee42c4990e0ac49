// Package compiler implements the subtype-lattice compiler pipeline:
// namespace construction, constraint-expression lowering, entity subtype
// compilation, and IR assembly (spec §4.2, §4.5, §4.6). It follows the
// teacher's collect-then-gate pipeline shape (pkg/corset/compiler.go's
// CompileSourceFiles): each pass runs to completion over every schema,
// diagnostics accumulate in one collector, and the pipeline only advances
// to the next pass once the current one is clean.
package compiler

import (
	"github.com/anandijain/espr/pkg/algebra"
	"github.com/anandijain/espr/pkg/ast"
	"github.com/anandijain/espr/pkg/diag"
	"github.com/anandijain/espr/pkg/lattice"
	"github.com/anandijain/espr/pkg/namespace"
	"github.com/anandijain/espr/pkg/ns"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CompilationConfig encapsulates the handful of options which affect
// compilation, mirroring the teacher's CompilationConfig in shape and
// intent (a plain struct, no config file or viper layer).
type CompilationConfig struct {
	// Debug enables verbose per-pass logging at logrus.DebugLevel.
	Debug bool
}

var log = logrus.New()

// Compile lowers a set of parsed schemas into their IR form, or returns a
// non-empty diagnostic list. It never returns a partial IR (spec §7):
// every pass collects every failure it can before the next pass decides
// whether to proceed.
func Compile(config CompilationConfig, schemas []*ast.Schema) ([]*lattice.Schema, []*diag.Diagnostic) {
	if config.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	nsTable := namespace.New()
	collector := diag.NewCollector()
	scopes := make([]ns.Scope, len(schemas))

	for i, schema := range schemas {
		scope := ns.Root().Pushed(ns.Schema, schema.Name)
		scopes[i] = scope

		for _, t := range schema.Types {
			if _, derr := nsTable.Insert(ns.NewPath(scope, ns.Type, t.Name), t); derr != nil {
				collector.Report(derr)
			}
		}

		for _, e := range schema.Entities {
			if _, derr := nsTable.Insert(ns.NewPath(scope, ns.Entity, e.Name), e); derr != nil {
				collector.Report(derr)
			}
		}
	}

	log.Debugf("namespace built: %d declarations across %d schemas", nsTable.Len(), len(schemas))

	if collector.HasErrors() {
		return nil, collector.Diagnostics()
	}

	for i, schema := range schemas {
		detectCyclicSupertypes(scopes[i], schema.Entities, collector)
	}

	if collector.HasErrors() {
		return nil, collector.Diagnostics()
	}

	irSchemas := make([]*lattice.Schema, len(schemas))
	buildID := uuid.New()

	for i, schema := range schemas {
		irSchemas[i] = compileSchema(nsTable, scopes[i], schema, buildID, collector)
	}

	if collector.HasErrors() {
		return nil, collector.Diagnostics()
	}

	log.Debugf("compiled %d schemas", len(irSchemas))

	return irSchemas, nil
}

func compileSchema(nsTable *namespace.Namespace, scope ns.Scope, schema *ast.Schema, buildID uuid.UUID, collector *diag.Collector) *lattice.Schema {
	out := &lattice.Schema{Name: schema.Name, BuildID: buildID}

	for _, t := range schema.Types {
		out.Types = append(out.Types, lowerType(nsTable, scope, t, collector))
	}

	var roots []algebra.Instantiables

	for _, e := range schema.Entities {
		entity := compileEntity(nsTable, scope, e, collector)
		if entity == nil {
			continue
		}

		out.Entities = append(out.Entities, entity)

		if len(e.Supertypes) == 0 {
			roots = append(roots, entity.Instantiable)
		}
	}

	out.Instantiable = algebra.Oneof(roots)

	return out
}

// compileEntity implements spec §4.5's three-step entity subtype
// compilation: base singleton, SUPERTYPE OF combination, subtype_of
// intersection.
func compileEntity(nsTable *namespace.Namespace, scope ns.Scope, e *ast.Entity, collector *diag.Collector) *lattice.Entity {
	idx, derr := nsTable.Lookup(scope, ns.Entity, e.Name, e.Span())
	if derr != nil {
		collector.Report(derr)
		return nil
	}

	inst := algebra.Single(idx)

	var constraintIR *lattice.ConstraintExpr

	if e.HasConstraint() {
		node, lowered := lowerConstraintExpr(nsTable, scope, e.Constraint, collector)
		if node == nil {
			return nil
		}

		constraintIR = node
		inst = inst.Intersect(lowered)
	}

	supertypes := make([]ns.Path, 0, len(e.Supertypes))

	for _, sup := range e.Supertypes {
		supIdx, derr := nsTable.Lookup(scope, ns.Entity, sup.Name, sup.SpanInfo)
		if derr != nil {
			collector.Report(derr)
			continue
		}

		path, _ := nsTable.Indexed(supIdx)
		supertypes = append(supertypes, path)
		inst = inst.Intersect(algebra.Single(supIdx))
	}

	attrs := make([]lattice.Attribute, 0, len(e.Attributes))

	for _, a := range e.Attributes {
		attrs = append(attrs, lattice.Attribute{
			Name: a.Name,
			Type: resolveTypePath(nsTable, scope, a.Type, collector),
		})
	}

	return &lattice.Entity{
		Name:         e.Name,
		Scope:        scope,
		Index:        idx,
		Attributes:   attrs,
		Supertypes:   supertypes,
		Constraint:   constraintIR,
		Instantiable: inst,
	}
}

// resolveTypePath resolves an attribute's type identifier: EXPRESS
// attributes may be typed by either a TYPE declaration or an ENTITY (used
// directly as an attribute type), so Type is tried first and Entity is the
// fallback.
func resolveTypePath(nsTable *namespace.Namespace, scope ns.Scope, ident ast.Identifier, collector *diag.Collector) ns.Path {
	if idx, derr := nsTable.Lookup(scope, ns.Type, ident.Name, ident.SpanInfo); derr == nil {
		path, _ := nsTable.Indexed(idx)
		return path
	}

	if idx, derr := nsTable.Lookup(scope, ns.Entity, ident.Name, ident.SpanInfo); derr == nil {
		path, _ := nsTable.Indexed(idx)
		return path
	}

	collector.Report(diag.Unresolved(scope, ident.Name, ident.SpanInfo))

	return ns.Path{}
}

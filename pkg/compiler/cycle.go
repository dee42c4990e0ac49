package compiler

import (
	"github.com/anandijain/espr/pkg/ast"
	"github.com/anandijain/espr/pkg/diag"
	"github.com/anandijain/espr/pkg/ns"
)

// detectCyclicSupertypes walks each entity's "SUBTYPE OF" (ast.Entity.
// Supertypes) edges looking for a cycle, reporting the first one found as
// a single CyclicSupertype diagnostic (spec §4.5 failure modes, scenario
// S8). Detection is schema-local: cross-schema supertype cycles are not
// possible to express through a single SUBTYPE OF clause naming only
// identifiers resolvable within one schema's declared entities.
func detectCyclicSupertypes(scope ns.Scope, entities []*ast.Entity, collector *diag.Collector) {
	byName := make(map[string]*ast.Entity, len(entities))
	for _, e := range entities {
		byName[e.Name] = e
	}

	visited := make(map[string]bool, len(entities))
	onStack := make(map[string]bool, len(entities))

	var visit func(name string, path []string) []string
	visit = func(name string, path []string) []string {
		if onStack[name] {
			start := indexOf(path, name)
			return append(append([]string{}, path[start:]...), name)
		}

		if visited[name] {
			return nil
		}

		visited[name] = true
		onStack[name] = true
		path = append(path, name)

		if e, ok := byName[name]; ok {
			for _, sup := range e.Supertypes {
				if cycle := visit(sup.Name, path); cycle != nil {
					return cycle
				}
			}
		}

		onStack[name] = false

		return nil
	}

	for _, e := range entities {
		if visited[e.Name] {
			continue
		}

		if cycle := visit(e.Name, nil); cycle != nil {
			collector.Report(diag.CyclicSupertype(cycle, scope, e.Span()))
			return
		}
	}
}

func indexOf(names []string, target string) int {
	for i, n := range names {
		if n == target {
			return i
		}
	}

	return -1
}

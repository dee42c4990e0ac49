// Package diag implements the compiler's diagnostic surface: a closed set
// of error kinds, each diagnostic carrying a primary (and optional
// secondary) source span plus the scope and identifier at fault.
package diag

import (
	"fmt"

	"github.com/anandijain/espr/pkg/ns"
	"github.com/anandijain/espr/pkg/source"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// The seven diagnostic kinds named in spec §4.7/§7. Each is a go-errors.v1
// Kind, matching the idiom used for ErrNotAuthorized/ErrNoPermission in
// dolthub/go-mysql-server's auth package: a package-level Kind constructed
// with a message template, instantiated per-occurrence with .New(...).
var (
	// KindDuplicatePath reports a second declaration at a path already in
	// the namespace.
	KindDuplicatePath = goerrors.NewKind("duplicate declaration of %s")
	// KindUnresolved reports an identifier that could not be found from
	// the given scope.
	KindUnresolved = goerrors.NewKind("unresolved identifier %q in scope %q")
	// KindAmbiguous reports an identifier with more than one equally-close
	// candidate declaration.
	KindAmbiguous = goerrors.NewKind("ambiguous identifier %q in scope %q")
	// KindCyclicSupertype reports a supertype chain that refers back to
	// itself.
	KindCyclicSupertype = goerrors.NewKind("cyclic supertype chain: %s")
	// KindEmptyConstraint reports a SUPERTYPE OF expression with zero
	// operands, or an AND with fewer than two.
	KindEmptyConstraint = goerrors.NewKind("empty constraint expression in %s")
	// KindInfeasibleConstraint reports a constraint that can never be
	// satisfied (optional per spec §4.5/§9).
	KindInfeasibleConstraint = goerrors.NewKind("infeasible constraint in %s: %s")
	// KindInternal reports a broken compiler invariant; this should never
	// happen on well-formed input and indicates a compiler bug.
	KindInternal = goerrors.NewKind("internal compiler error: %s")
)

// Diagnostic is a single reported problem, with enough context to render a
// useful message pointing back into the original EXPRESS source.
type Diagnostic struct {
	// Err is the underlying typed error (one of the Kind* values above,
	// instantiated via .New()).
	Err error
	// Primary is the span in the originating source this diagnostic is
	// anchored to.
	Primary source.Span
	// Secondary optionally points at a second span, e.g. "first defined
	// here" for a DuplicatePath diagnostic.
	Secondary *source.Span
	// Scope is the scope in which the problem arose.
	Scope ns.Scope
	// Identifier is the name at fault, if any.
	Identifier string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Secondary != nil {
		return fmt.Sprintf("%s (at %s, scope %q; also see %s)", d.Err.Error(), d.Primary, d.Scope, *d.Secondary)
	}

	return fmt.Sprintf("%s (at %s, scope %q)", d.Err.Error(), d.Primary, d.Scope)
}

// Is reports whether this diagnostic was produced from the given Kind,
// delegating to go-errors.v1's own Is check on the wrapped error.
func (d *Diagnostic) Is(kind *goerrors.Kind) bool {
	return kind.Is(d.Err)
}

// DuplicatePath constructs a DuplicatePath diagnostic. first is the span of
// the pre-existing declaration.
func DuplicatePath(path ns.Path, primary source.Span, first source.Span) *Diagnostic {
	return &Diagnostic{
		Err:        KindDuplicatePath.New(path.String()),
		Primary:    primary,
		Secondary:  &first,
		Scope:      path.Scope,
		Identifier: path.Name,
	}
}

// Unresolved constructs an Unresolved diagnostic.
func Unresolved(scope ns.Scope, identifier string, primary source.Span) *Diagnostic {
	return &Diagnostic{
		Err:        KindUnresolved.New(identifier, scope.String()),
		Primary:    primary,
		Scope:      scope,
		Identifier: identifier,
	}
}

// Ambiguous constructs an Ambiguous diagnostic.
func Ambiguous(scope ns.Scope, identifier string, primary source.Span) *Diagnostic {
	return &Diagnostic{
		Err:        KindAmbiguous.New(identifier, scope.String()),
		Primary:    primary,
		Scope:      scope,
		Identifier: identifier,
	}
}

// CyclicSupertype constructs a CyclicSupertype diagnostic over the chain of
// entity names involved in the cycle.
func CyclicSupertype(chain []string, scope ns.Scope, primary source.Span) *Diagnostic {
	return &Diagnostic{
		Err:     KindCyclicSupertype.New(chainString(chain)),
		Primary: primary,
		Scope:   scope,
	}
}

// EmptyConstraint constructs an EmptyConstraint diagnostic.
func EmptyConstraint(scope ns.Scope, primary source.Span) *Diagnostic {
	return &Diagnostic{
		Err:     KindEmptyConstraint.New(scope.String()),
		Primary: primary,
		Scope:   scope,
	}
}

// InfeasibleConstraint constructs an InfeasibleConstraint diagnostic.
func InfeasibleConstraint(scope ns.Scope, reason string, primary source.Span) *Diagnostic {
	return &Diagnostic{
		Err:     KindInfeasibleConstraint.New(scope.String(), reason),
		Primary: primary,
		Scope:   scope,
	}
}

// Internal constructs an Internal diagnostic for a broken invariant. Callers
// at the package boundary should treat this as unrecoverable: a compile
// with an Internal diagnostic present has detected its own bug, not a
// problem with the input schema.
func Internal(reason string) *Diagnostic {
	return &Diagnostic{
		Err: KindInternal.New(reason),
	}
}

func chainString(chain []string) string {
	out := chain[0]
	for _, name := range chain[1:] {
		out += " -> " + name
	}

	return out
}

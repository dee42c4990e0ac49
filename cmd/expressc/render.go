package main

import (
	"fmt"
	"io"

	"github.com/anandijain/espr/pkg/diag"
	"github.com/anandijain/espr/pkg/lattice"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// renderDiagnostics prints one line per diagnostic, matching spec §7's
// user-visible contract: kind, message, primary span, scope. Coloring is
// only applied when color is true — callers decide that via
// golang.org/x/term.IsTerminal, the same check the teacher's termio
// package uses before emitting ANSI escapes.
func renderDiagnostics(w io.Writer, diagnostics []*diag.Diagnostic, color bool) {
	for _, d := range diagnostics {
		if color {
			fmt.Fprintf(w, "%serror%s: %s\n", ansiRed, ansiReset, d.Error())
		} else {
			fmt.Fprintf(w, "error: %s\n", d.Error())
		}
	}

	fmt.Fprintf(w, "%d diagnostic(s)\n", len(diagnostics))
}

// renderSummary prints a compact per-schema summary of the compiled IR:
// name, build id, and the size of the per-schema instantiable rollup.
func renderSummary(w io.Writer, schemas []*lattice.Schema) {
	for _, s := range schemas {
		fmt.Fprintf(w, "schema %s (build %s): %d types, %d entities, %d instantiable form(s)\n",
			s.Name, s.BuildID, len(s.Types), len(s.Entities), s.Instantiable.Len())
	}
}

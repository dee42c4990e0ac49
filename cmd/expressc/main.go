// Command expressc is the thin reference CLI driver for the subtype-lattice
// compiler: it reads one or more JSON schema fixture files (standing in
// for the real EXPRESS lexer/parser, which is an external collaborator
// out of this repository's scope), compiles them, and either prints the
// resulting diagnostics or a summary of the compiled IR.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/anandijain/espr/pkg/compiler"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// compileCmd mirrors the teacher's compileCmd (pkg/cmd/compile.go): verbose
// flips the log level, the real work is a single call into the core
// package, and failures are reported and exit rather than panicking:
// status 2 when a schema file cannot be read or parsed, status 1 when
// compilation produces diagnostics.
var compileCmd = &cobra.Command{
	Use:   "compile [flags] schema_file(s)",
	Short: "compile one or more schema fixture files into their subtype-lattice IR.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		schemas, err := loadSchemas(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		config := compiler.CompilationConfig{Debug: GetFlag(cmd, "verbose")}

		useColor := term.IsTerminal(int(os.Stdout.Fd())) && !GetFlag(cmd, "no-color")

		compiled, diagnostics := compiler.Compile(config, schemas)
		if diagnostics != nil {
			renderDiagnostics(os.Stdout, diagnostics, useColor)
			os.Exit(1)
		}

		renderSummary(os.Stdout, compiled)
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

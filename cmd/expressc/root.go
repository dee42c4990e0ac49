package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands,
// grounded on the teacher's pkg/cmd/root.go shape (cobra.Command value,
// persistent flags registered in init(), GetFlag/GetString helpers).
var rootCmd = &cobra.Command{
	Use:   "expressc",
	Short: "A compiler for the EXPRESS subtype-lattice (ISO 10303-11).",
	Long: `expressc compiles parsed EXPRESS schemas into their subtype-lattice IR:
resolving each schema's references in one namespace shared by all schemas
(a schema does not see another schema's declarations), normalizing SUPERTYPE OF constraint
expressions, and computing the instantiable partial-complex-entity set for
every entity.`,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI diagnostic coloring")
}

// GetFlag gets an expected boolean flag, or exits if the flag is missing —
// matching the teacher's fail-fast cmd/util.go helpers.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if the flag is missing.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// brdctl is the operator CLI: it opens the configured store directly
// and inspects or exports projects without going through the API.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "brdctl",
		Short:         "Inspect and export BRD projects from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newProjectsCmd())
	root.AddCommand(newExportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command foresolve parses a first-order logic input file, converts it
// to CNF, and attempts a resolution-refutation proof of its final
// assertion against the premises before it (spec §1, §6).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "foresolve",
		Short:         "Resolution-refutation prover for first-order logic input files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newCNFCmd(), newParseCmd())
	return root
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <input-file>",
		Short: "Parse an input file and print the formula tree for each line, without converting to CNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			premises, query, err := loadSources(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range premises {
				fmt.Fprintf(out, "premise  %d: %s\n", p.Line, p.Formula)
			}
			fmt.Fprintf(out, "query    %d: %s\n", query.Line, query.Formula)
			return nil
		},
	}
	return cmd
}

package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Dani2044/First-order-resolution-engine/internal/engine"
)

func newCNFCmd() *cobra.Command {
	var (
		out      string
		traceCNF bool
	)

	cmd := &cobra.Command{
		Use:   "cnf <input-file>",
		Short: "Convert premises and the negated query to CNF without proving anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := hclog.NewNullLogger()
			if traceCNF {
				logger = hclog.New(&hclog.LoggerOptions{Name: "foresolve", Level: hclog.Debug, Output: cmd.ErrOrStderr()})
			}

			premises, query, err := loadSources(args[0])
			if err != nil {
				return err
			}
			premiseClauses, queryClauses, err := engine.Convert(engine.Options{
				TraceCNF: traceCNF,
				Logger:   logger,
			}, premises, query)
			if err != nil {
				return err
			}

			doc := engine.CNFDocument(premiseClauses, queryClauses)
			if out == "" {
				_, err := cmd.OutOrStdout().Write([]byte(doc))
				return err
			}
			return os.WriteFile(out, []byte(doc), 0o644)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the CNF document to a file instead of stdout")
	cmd.Flags().BoolVar(&traceCNF, "trace-cnf", false, "log the formula after each CNF rewrite stage")
	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Dani2044/First-order-resolution-engine/internal/engine"
	"github.com/Dani2044/First-order-resolution-engine/internal/prover"
)

func newRunCmd() *cobra.Command {
	var (
		cnfOut    string
		reportOut string
		maxSteps  int
		logLevel  string
		traceCNF  bool
	)

	cmd := &cobra.Command{
		Use:   "run <input-file>",
		Short: "Parse, convert to CNF, and attempt a refutation proof",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "foresolve",
				Level:  hclog.LevelFromString(logLevel),
				Output: cmd.ErrOrStderr(),
			})

			premises, query, err := loadSources(inputPath)
			if err != nil {
				return err
			}

			result, err := engine.Run(cmd.Context(), engine.Options{
				MaxSteps: maxSteps,
				TraceCNF: traceCNF,
				Logger:   logger,
			}, premises, query)
			if err != nil {
				return err
			}

			cnfPath := cnfOut
			if cnfPath == "" {
				cnfPath = defaultCNFPath(inputPath)
			}
			reportPath := reportOut
			if reportPath == "" {
				reportPath = defaultReportPath(inputPath)
			}

			if err := os.WriteFile(cnfPath, []byte(result.CNFDocument()), 0o644); err != nil {
				return fmt.Errorf("writing CNF file: %w", err)
			}
			if err := os.WriteFile(reportPath, []byte(result.ReportDocument()), 0o644); err != nil {
				return fmt.Errorf("writing report file: %w", err)
			}

			logger.Info("wrote artifacts", "cnf", cnfPath, "report", reportPath)
			if result.State == prover.BoundReached {
				logger.Warn("step bound reached before saturation", "max_steps", maxSteps)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cnfOut, "cnf-out", "", "path for the intermediate CNF file (default: <input>.cnf)")
	cmd.Flags().StringVar(&reportOut, "report-out", "", "path for the inference report (default: <input>.result)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", prover.DefaultMaxSteps, "saturation step bound")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	cmd.Flags().BoolVar(&traceCNF, "trace-cnf", false, "log the formula after each CNF rewrite stage")
	return cmd
}

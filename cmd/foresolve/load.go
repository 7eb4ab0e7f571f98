package main

import "github.com/Dani2044/First-order-resolution-engine/internal/engine"

// loadSources reads, splits, and parses an input file in one step —
// shared by every subcommand that needs parsed formulas.
func loadSources(path string) (premises []engine.Source, query engine.Source, err error) {
	raw, err := engine.ReadFile(path)
	if err != nil {
		return nil, engine.Source{}, err
	}
	premiseLines, queryLine, err := engine.SplitLines(raw)
	if err != nil {
		return nil, engine.Source{}, err
	}
	return engine.ParseSources(premiseLines, queryLine)
}

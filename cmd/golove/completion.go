package main

import (
	"strings"

	"github.com/posener/complete"
)

// newActionPredictor completes action names for --action flags.
func newActionPredictor() complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		return filterByPrefix(actionNames(), args.Last)
	})
}

// newPresetPredictor completes preset names.
func newPresetPredictor() complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		return filterByPrefix(presetNames(), args.Last)
	})
}

func filterByPrefix(candidates []string, partial string) []string {
	partial = strings.ToLower(partial)
	results := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, partial) {
			results = append(results, candidate)
		}
	}
	return results
}

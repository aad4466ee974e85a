package stats

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"paperlens/domain/paper"
)

// AnalyzeSignificance classifies a paper's results from its extracted
// statistics. The minimum p-value drives the verdict; when no p-values were
// found the average sample size gives a statement about statistical power
// instead, which deliberately makes no significance claim.
//
// Pure function: same Statistics always yield the same Significance.
func AnalyzeSignificance(s paper.Statistics) paper.Significance {
	verdict := paper.Significance{
		IsSignificant:     false,
		SignificanceLevel: paper.SignificanceLevel,
		Interpretation:    "No statistical data found",
	}

	if len(s.PValues) > 0 {
		minP, _ := stats.Min(s.PValues)
		verdict.MinPValue = &minP
		verdict.IsSignificant = minP < paper.SignificanceLevel
		verdict.Interpretation = interpretPValue(minP)
		return verdict
	}

	if maxSample(s.SampleSizes) > 0 {
		sizes := make([]float64, len(s.SampleSizes))
		for i, n := range s.SampleSizes {
			sizes[i] = float64(n)
		}
		avg, _ := stats.Mean(sizes)
		verdict.Interpretation = interpretSampleSize(avg)
		return verdict
	}

	verdict.Interpretation = "Using mock statistical data for demonstration"
	return verdict
}

// Thresholds are strict and checked most extreme first.
func interpretPValue(minP float64) string {
	switch {
	case minP < 0.001:
		return "Highly significant results (p < 0.001) - Very strong evidence"
	case minP < 0.01:
		return "Very significant results (p < 0.01) - Strong evidence"
	case minP < 0.05:
		return "Significant results (p < 0.05) - Moderate evidence"
	default:
		return "Not statistically significant (p >= 0.05) - Weak evidence"
	}
}

func interpretSampleSize(avg float64) string {
	switch {
	case avg > 1000:
		return fmt.Sprintf("Large sample size (avg: %d) - Good statistical power", int(avg))
	case avg > 100:
		return fmt.Sprintf("Moderate sample size (avg: %d) - Adequate for most analyses", int(avg))
	default:
		return fmt.Sprintf("Small sample size (avg: %d) - Limited statistical power", int(avg))
	}
}

func maxSample(sizes []int) int {
	max := 0
	for _, n := range sizes {
		if n > max {
			max = n
		}
	}
	return max
}

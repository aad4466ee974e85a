package app

import (
	"gonum.org/v1/gonum/stat"

	"paperlens/domain/paper"
)

// ComparisonService aggregates analyzed papers into a side-by-side report.
// Pure aggregation: inputs are never mutated and the report is recomputed
// on every call rather than cached.
type ComparisonService struct{}

// NewComparisonService creates a comparison service
func NewComparisonService() *ComparisonService {
	return &ComparisonService{}
}

// Compare builds a ComparisonReport over papers in the given order. Zero
// papers yields a defined empty report with the average omitted.
func (c *ComparisonService) Compare(papers []*paper.AnalyzedPaper) paper.ComparisonReport {
	report := paper.ComparisonReport{
		TotalPapers: len(papers),
		Papers:      make([]paper.PaperComparison, 0, len(papers)),
	}

	for _, p := range papers {
		row := paper.PaperComparison{
			Title:      p.Summary.Title,
			SampleSize: 0,
			MinPValue:  1.0,
		}
		for _, n := range p.Statistics.SampleSizes {
			if n > row.SampleSize {
				row.SampleSize = n
			}
		}
		if len(p.Statistics.PValues) > 0 {
			minP := p.Statistics.PValues[0]
			for _, v := range p.Statistics.PValues[1:] {
				if v < minP {
					minP = v
				}
			}
			row.MinPValue = minP
			row.IsSignificant = minP < paper.SignificanceLevel
		}
		if row.IsSignificant {
			report.SignificantCount++
		}
		report.Papers = append(report.Papers, row)
	}

	if len(report.Papers) > 0 {
		sizes := make([]float64, len(report.Papers))
		for i, row := range report.Papers {
			sizes[i] = float64(row.SampleSize)
		}
		avg := stat.Mean(sizes, nil)
		report.AvgSampleSize = &avg
	}

	return report
}

package paper

import (
	"time"

	"github.com/google/uuid"
)

// SignificanceLevel is the fixed alpha used throughout the analyzer.
const SignificanceLevel = 0.05

// Summary holds the analysis backend's write-up of a single paper.
// With the mock backend everything except Title is canned demo content.
type Summary struct {
	Title       string   `json:"title"`
	Authors     string   `json:"authors"`
	Abstract    string   `json:"abstract"`
	Methodology string   `json:"methodology"`
	KeyFindings []string `json:"key_findings"`
	Conclusions string   `json:"conclusions"`
}

// Statistics contains the numeric values pulled out of a paper's text.
// INVARIANTS:
// - PValues always within [0.0, 1.0], at most 10 entries
// - SampleSizes always within (0, 1000000), at most 10 entries
// - Percentages always within [0.0, 100.0], at most 20 entries
// - each list is deduplicated; source ordering is not preserved
// - ConfidenceIntervals is present in the shape but never populated
type Statistics struct {
	SampleSizes         []int     `json:"sample_sizes"`
	PValues             []float64 `json:"p_values"`
	Percentages         []float64 `json:"percentages"`
	ConfidenceIntervals []float64 `json:"confidence_intervals"`
}

// Significance is the verdict derived from a paper's Statistics.
// MinPValue is nil when the paper yielded no p-values at all.
type Significance struct {
	IsSignificant     bool     `json:"is_significant"`
	SignificanceLevel float64  `json:"significance_level"`
	Interpretation    string   `json:"interpretation"`
	MinPValue         *float64 `json:"min_p_value,omitempty"`
}

// AnalyzedPaper is the unit stored per uploaded file. Papers are keyed by
// file name: the first analysis of a name wins and later uploads of the
// same name are no-ops.
type AnalyzedPaper struct {
	ID           uuid.UUID    `json:"id"`
	FileName     string       `json:"file_name"`
	Summary      Summary      `json:"summary"`
	Statistics   Statistics   `json:"statistics"`
	Significance Significance `json:"significance"`
	AnalyzedAt   time.Time    `json:"analyzed_at"`
}

// PaperComparison is one paper's row in a ComparisonReport.
type PaperComparison struct {
	Title         string  `json:"title"`
	SampleSize    int     `json:"sample_size"` // max of the paper's sample sizes, 0 when none
	MinPValue     float64 `json:"min_p_value"` // min of the paper's p-values, 1.0 when none
	IsSignificant bool    `json:"is_significant"`
}

// ComparisonReport is a read-only aggregate over the currently held papers.
// It is recomputed on demand and never persisted.
type ComparisonReport struct {
	TotalPapers      int               `json:"total_papers"`
	Papers           []PaperComparison `json:"papers"`
	AvgSampleSize    *float64          `json:"avg_sample_size,omitempty"` // omitted when no papers
	SignificantCount int               `json:"significant_count"`
}

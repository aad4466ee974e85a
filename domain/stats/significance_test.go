package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperlens/domain/paper"
)

func statsWithPValues(pValues ...float64) paper.Statistics {
	return paper.Statistics{PValues: pValues, ConfidenceIntervals: []float64{}}
}

func TestAnalyzeSignificanceThresholds(t *testing.T) {
	tests := []struct {
		name          string
		pValue        float64
		significant   bool
		wantedVerdict string
	}{
		{"highly significant", 0.0005, true, "Highly significant results (p < 0.001)"},
		{"very significant", 0.005, true, "Very significant results (p < 0.01)"},
		{"significant", 0.03, true, "Significant results (p < 0.05)"},
		{"not significant", 0.5, false, "Not statistically significant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := AnalyzeSignificance(statsWithPValues(tt.pValue))

			assert.Equal(t, tt.significant, verdict.IsSignificant)
			assert.Contains(t, verdict.Interpretation, tt.wantedVerdict)
			require.NotNil(t, verdict.MinPValue)
			assert.Equal(t, tt.pValue, *verdict.MinPValue)
			assert.Equal(t, 0.05, verdict.SignificanceLevel)
		})
	}
}

func TestAnalyzeSignificanceUsesMinimumPValue(t *testing.T) {
	// The placeholder triple: 0.003 is not < 0.001, so it lands in the
	// p < 0.01 bucket.
	verdict := AnalyzeSignificance(statsWithPValues(0.003, 0.012, 0.041))

	require.NotNil(t, verdict.MinPValue)
	assert.Equal(t, 0.003, *verdict.MinPValue)
	assert.True(t, verdict.IsSignificant)
	assert.Contains(t, verdict.Interpretation, "Very significant results (p < 0.01)")
}

func TestAnalyzeSignificanceBoundariesAreStrict(t *testing.T) {
	atAlpha := AnalyzeSignificance(statsWithPValues(0.05))
	assert.False(t, atAlpha.IsSignificant)
	assert.Contains(t, atAlpha.Interpretation, "Not statistically significant")

	atHundredth := AnalyzeSignificance(statsWithPValues(0.01))
	assert.Contains(t, atHundredth.Interpretation, "Significant results (p < 0.05)")

	atThousandth := AnalyzeSignificance(statsWithPValues(0.001))
	assert.Contains(t, atThousandth.Interpretation, "Very significant results (p < 0.01)")
}

func TestAnalyzeSignificanceSampleSizeFallback(t *testing.T) {
	tests := []struct {
		name    string
		sizes   []int
		wording string
	}{
		{"large", []int{1500, 2500}, "Large sample size (avg: 2000)"},
		{"moderate", []int{100, 200}, "Moderate sample size (avg: 150)"},
		{"small", []int{20, 80}, "Small sample size (avg: 50)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := AnalyzeSignificance(paper.Statistics{SampleSizes: tt.sizes})

			assert.Contains(t, verdict.Interpretation, tt.wording)
			// The power statement never claims significance.
			assert.False(t, verdict.IsSignificant)
			assert.Nil(t, verdict.MinPValue)
		})
	}
}

func TestAnalyzeSignificanceNoData(t *testing.T) {
	verdict := AnalyzeSignificance(paper.Statistics{})

	assert.False(t, verdict.IsSignificant)
	assert.Nil(t, verdict.MinPValue)
	assert.Equal(t, "Using mock statistical data for demonstration", verdict.Interpretation)
}

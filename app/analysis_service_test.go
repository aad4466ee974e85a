package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paperlens/adapters/memstore"
	"paperlens/domain/paper"
	"paperlens/internal/errors"
)

// paperText is long enough to pass the minimum-length check and carries one
// value per statistics category.
var paperText = "A Study of Teaching Methods\n" +
	"We conducted a randomized controlled trial with n=500 students. " +
	"The treatment group showed significant improvement (p=0.003). " +
	"The average test score increased by 15.5%. " +
	strings.Repeat("Further discussion follows. ", 5)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) ExtractFile(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, text string) (paper.Summary, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(paper.Summary), args.Error(1)
}

func (m *MockSummarizer) Backend() string {
	return "mock"
}

// captureExtractor records the staging path it was handed so tests can check
// the temp file is gone afterwards.
type captureExtractor struct {
	path string
	text string
	err  error
}

func (c *captureExtractor) ExtractFile(ctx context.Context, path string) (string, error) {
	c.path = path
	return c.text, c.err
}

func TestAnalyzeFileRunsFullPipeline(t *testing.T) {
	extractor := new(MockExtractor)
	summarizer := new(MockSummarizer)
	store := memstore.New()

	extractor.On("ExtractFile", mock.Anything, mock.Anything).Return(paperText, nil).Once()
	summarizer.On("Summarize", mock.Anything, paperText).Return(paper.Summary{Title: "A Study of Teaching Methods"}, nil).Once()

	service := NewAnalysisService(extractor, summarizer, store)
	analyzed, created, err := service.AnalyzeFile(context.Background(), "study.pdf", []byte("%PDF-"))

	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, analyzed)
	assert.Equal(t, "study.pdf", analyzed.FileName)
	assert.NotEqual(t, uuid.Nil, analyzed.ID)
	assert.Contains(t, analyzed.Statistics.SampleSizes, 500)
	assert.Contains(t, analyzed.Statistics.PValues, 0.003)
	assert.Contains(t, analyzed.Statistics.Percentages, 15.5)
	assert.True(t, analyzed.Significance.IsSignificant)
	assert.Equal(t, 1, store.Len())

	extractor.AssertExpectations(t)
	summarizer.AssertExpectations(t)
}

func TestAnalyzeFileIsIdempotentByName(t *testing.T) {
	extractor := new(MockExtractor)
	summarizer := new(MockSummarizer)
	store := memstore.New()

	// The pipeline must run exactly once for a given file name.
	extractor.On("ExtractFile", mock.Anything, mock.Anything).Return(paperText, nil).Once()
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return(paper.Summary{Title: "T"}, nil).Once()

	service := NewAnalysisService(extractor, summarizer, store)

	first, created, err := service.AnalyzeFile(context.Background(), "study.pdf", []byte("%PDF-"))
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := service.AnalyzeFile(context.Background(), "study.pdf", []byte("different bytes"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, 1, store.Len())

	extractor.AssertExpectations(t)
	summarizer.AssertExpectations(t)
}

func TestAnalyzeFileRejectsShortText(t *testing.T) {
	extractor := new(MockExtractor)
	summarizer := new(MockSummarizer)
	store := memstore.New()

	extractor.On("ExtractFile", mock.Anything, mock.Anything).Return("too short", nil).Once()

	service := NewAnalysisService(extractor, summarizer, store)
	_, _, err := service.AnalyzeFile(context.Background(), "scanned.pdf", []byte("%PDF-"))

	require.Error(t, err)
	assert.Equal(t, errors.CodeTextTooShort, errors.GetCode(err))
	assert.Equal(t, 0, store.Len())
	summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
}

func TestAnalyzeFileRejectsEmptyName(t *testing.T) {
	service := NewAnalysisService(new(MockExtractor), new(MockSummarizer), memstore.New())

	_, _, err := service.AnalyzeFile(context.Background(), "", []byte("%PDF-"))

	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestAnalyzeBatchIsolatesFailures(t *testing.T) {
	extractor := new(MockExtractor)
	summarizer := new(MockSummarizer)
	store := memstore.New()

	extractor.On("ExtractFile", mock.Anything, mock.Anything).Return("", fmt.Errorf("corrupt xref table")).Once()
	extractor.On("ExtractFile", mock.Anything, mock.Anything).Return(paperText, nil).Once()
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return(paper.Summary{Title: "T"}, nil).Once()

	service := NewAnalysisService(extractor, summarizer, store)
	results := service.AnalyzeBatch(context.Background(), []Upload{
		{FileName: "broken.pdf", Data: []byte("not a pdf")},
		{FileName: "good.pdf", Data: []byte("%PDF-")},
	})

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.True(t, results[1].Created)
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Has("good.pdf"))
}

func TestAnalyzeFileRemovesTempFile(t *testing.T) {
	extractor := &captureExtractor{text: paperText}
	summarizer := new(MockSummarizer)
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return(paper.Summary{Title: "T"}, nil).Once()

	service := NewAnalysisService(extractor, summarizer, memstore.New())
	_, _, err := service.AnalyzeFile(context.Background(), "study.pdf", []byte("%PDF-"))

	require.NoError(t, err)
	require.NotEmpty(t, extractor.path)
	_, statErr := os.Stat(extractor.path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAnalyzeFileRemovesTempFileOnFailure(t *testing.T) {
	extractor := &captureExtractor{err: fmt.Errorf("unreadable")}
	service := NewAnalysisService(extractor, new(MockSummarizer), memstore.New())

	_, _, err := service.AnalyzeFile(context.Background(), "broken.pdf", []byte("junk"))

	require.Error(t, err)
	require.NotEmpty(t, extractor.path)
	_, statErr := os.Stat(extractor.path)
	assert.True(t, os.IsNotExist(statErr))
}

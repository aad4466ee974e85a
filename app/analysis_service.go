package app

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"paperlens/domain/paper"
	"paperlens/domain/stats"
	"paperlens/internal"
	"paperlens/internal/errors"
	"paperlens/ports"
)

// minTextLength is the smallest extraction considered analyzable. Below
// this the PDF is most likely scanned images or protected.
const minTextLength = 100

// Upload is one file handed over by the web layer.
type Upload struct {
	FileName string
	Data     []byte
}

// FileResult reports the outcome of analyzing one uploaded file.
type FileResult struct {
	FileName string
	Paper    *paper.AnalyzedPaper
	Created  bool // false when the file name was already analyzed
	Err      error
}

// AnalysisService runs the per-file pipeline: extract text, summarize,
// extract statistics, judge significance, store. Each file runs to
// completion before the next begins; one file's failure never aborts the
// rest of a batch.
type AnalysisService struct {
	extractor  ports.ExtractorPort
	summarizer ports.SummarizerPort
	store      ports.StorePort
	group      singleflight.Group
	logger     *internal.Logger
}

// NewAnalysisService creates the analysis pipeline service
func NewAnalysisService(extractor ports.ExtractorPort, summarizer ports.SummarizerPort, store ports.StorePort) *AnalysisService {
	return &AnalysisService{
		extractor:  extractor,
		summarizer: summarizer,
		store:      store,
		logger:     internal.DefaultLogger,
	}
}

// AnalyzeBatch processes uploads in order and reports per-file outcomes.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, uploads []Upload) []FileResult {
	results := make([]FileResult, 0, len(uploads))
	for _, upload := range uploads {
		analyzed, created, err := s.AnalyzeFile(ctx, upload.FileName, upload.Data)
		if err != nil {
			s.logger.Warn("analysis of %s failed: %v", upload.FileName, err)
		}
		results = append(results, FileResult{
			FileName: upload.FileName,
			Paper:    analyzed,
			Created:  created,
			Err:      err,
		})
	}
	return results
}

// AnalyzeFile analyzes one uploaded PDF. Re-submitting a file name that is
// already in the store is a no-op returning the existing paper. Concurrent
// submissions of the same name collapse into a single analysis.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, fileName string, data []byte) (*paper.AnalyzedPaper, bool, error) {
	if fileName == "" {
		return nil, false, errors.InvalidInput("file name must not be empty")
	}
	if existing, ok := s.store.Get(fileName); ok {
		return existing, false, nil
	}

	v, err, _ := s.group.Do(fileName, func() (interface{}, error) {
		// Re-check under the flight: a concurrent upload may have won.
		if existing, ok := s.store.Get(fileName); ok {
			return existing, nil
		}
		return s.analyze(ctx, fileName, data)
	})
	if err != nil {
		return nil, false, err
	}

	analyzed := v.(*paper.AnalyzedPaper)
	return analyzed, s.store.Put(analyzed), nil
}

// analyze runs the pipeline for a file that is not in the store yet.
func (s *AnalysisService) analyze(ctx context.Context, fileName string, data []byte) (*paper.AnalyzedPaper, error) {
	text, err := s.extractText(ctx, fileName, data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("analyzing %s (%d characters extracted)", fileName, len(text))

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		return nil, errors.Wrapf(err, "summary generation failed for %s", fileName)
	}

	statistics := stats.Extract(text)
	significance := stats.AnalyzeSignificance(statistics)

	return &paper.AnalyzedPaper{
		ID:           uuid.New(),
		FileName:     fileName,
		Summary:      summary,
		Statistics:   statistics,
		Significance: significance,
		AnalyzedAt:   time.Now(),
	}, nil
}

// extractText stages the upload in a temp file for the extractor and always
// removes it, extraction failure included.
func (s *AnalysisService) extractText(ctx context.Context, fileName string, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "paperlens-*.pdf")
	if err != nil {
		return "", errors.Wrap(err, "failed to stage upload")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", errors.Wrap(err, "failed to stage upload")
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrap(err, "failed to stage upload")
	}

	text, err := s.extractor.ExtractFile(ctx, tmpPath)
	if err != nil {
		s.logger.Warn("extraction failed for %s: %v", fileName, err)
	}
	if len(strings.TrimSpace(text)) < minTextLength {
		return "", errors.TextTooShort(fileName)
	}
	return text, nil
}

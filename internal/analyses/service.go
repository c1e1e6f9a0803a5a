package analyses

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cvscore-backend/internal/documents"
	"cvscore-backend/internal/engine"
	"cvscore-backend/internal/shared/metrics"
	"cvscore-backend/internal/usage"
)

// Service runs the scoring engine and persists the outcome. Every analysis
// consumes one usage unit.
type Service struct {
	Repo     Repo
	Docs     *documents.Service
	Usage    *usage.Service
	Analyzer *engine.Analyzer
}

// NewService constructs an analyses Service.
func NewService(repo Repo, docs *documents.Service, usageSvc *usage.Service, analyzer *engine.Analyzer) *Service {
	return &Service{Repo: repo, Docs: docs, Usage: usageSvc, Analyzer: analyzer}
}

// AnalyzeText scores raw CV text, optionally matching it against a job description.
func (s *Service) AnalyzeText(ctx context.Context, userID, text, jobDescription string) (Analysis, error) {
	return s.run(ctx, userID, "", text, jobDescription)
}

// AnalyzeDocument extracts the text of an uploaded document and scores it.
func (s *Service) AnalyzeDocument(ctx context.Context, userID, documentID, jobDescription string) (Analysis, error) {
	text, err := s.Docs.Text(ctx, userID, documentID)
	if err != nil {
		return Analysis{}, err
	}
	return s.run(ctx, userID, documentID, text, jobDescription)
}

// Get returns an analysis owned by the user.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	return s.Repo.GetByID(ctx, userID, analysisID)
}

// List returns the user's analyses, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) run(ctx context.Context, userID, documentID, text, jobDescription string) (Analysis, error) {
	ok, _, err := s.Usage.CanConsume(ctx, userID, 1)
	if err != nil {
		return Analysis{}, fmt.Errorf("check usage: %w", err)
	}
	if !ok {
		return Analysis{}, usage.ErrLimitReached
	}

	metrics.IncAnalysisStarted()
	start := metrics.NowMillis()

	result, err := s.Analyzer.Analyze(text)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, err
	}

	var jobMatch *engine.JobMatch
	if jobDescription != "" {
		if match, matched := s.Analyzer.MatchJob(text, jobDescription); matched {
			jobMatch = &match
			metrics.IncJobMatchComputed()
		}
	}

	if _, err := s.Usage.Consume(ctx, userID, 1); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, err
	}

	analysis := Analysis{
		ID:              uuid.NewString(),
		UserID:          userID,
		DocumentID:      documentID,
		TaxonomyVersion: result.TaxonomyVersion,
		Result:          result,
		JobMatch:        jobMatch,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, fmt.Errorf("save analysis: %w", err)
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - start)
	return analysis, nil
}

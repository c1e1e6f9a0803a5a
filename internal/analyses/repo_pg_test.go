package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cvscore-backend/internal/engine"
)

func TestPGRepoCreateDenormalizesScores(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := Analysis{
		ID:              "analysis-1",
		UserID:          "user-1",
		DocumentID:      "doc-1",
		TaxonomyVersion: "za-2025-08",
		Result: engine.Result{
			OverallScore:         67,
			Rating:               "Good",
			FormatScore:          85,
			ContentScore:         70,
			RegionalContextScore: 45,
			RegionalRelevance:    "Medium",
			TaxonomyVersion:      "za-2025-08",
		},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.UserID,
			analysis.DocumentID,
			analysis.TaxonomyVersion,
			67,
			"Good",
			85,
			70,
			45,
			"Medium",
			sqlmock.AnyArg(), // result payload
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRoundTripsResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	stored := storedResult{
		Result: engine.Result{
			OverallScore:         72,
			Rating:               "Good",
			FormatScore:          80,
			ContentScore:         75,
			RegionalContextScore: 60,
			RegionalRelevance:    "Medium",
			Strengths:            []string{"Your CV has a clear structure."},
			Skills:               []string{"python"},
			TaxonomyVersion:      "za-2025-08",
		},
		JobMatch: &engine.JobMatch{MatchScore: 50, Relevance: "Medium"},
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("marshal stored result: %v", err)
	}

	createdAt := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{"id", "user_id", "document_id", "taxonomy_version", "result", "created_at"}).
		AddRow("analysis-1", "user-1", nil, "za-2025-08", payload, createdAt)

	mock.ExpectQuery("SELECT id, user_id, document_id, taxonomy_version, result, created_at").
		WithArgs("user-1", "analysis-1").
		WillReturnRows(rows)

	analysis, err := repo.GetByID(context.Background(), "user-1", "analysis-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if analysis.DocumentID != "" {
		t.Fatalf("expected empty document id, got %q", analysis.DocumentID)
	}
	if analysis.Result.OverallScore != 72 {
		t.Fatalf("expected overall score 72, got %d", analysis.Result.OverallScore)
	}
	if analysis.JobMatch == nil || analysis.JobMatch.MatchScore != 50 {
		t.Fatalf("expected job match round-trip, got %+v", analysis.JobMatch)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, user_id, document_id, taxonomy_version, result, created_at").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "document_id", "taxonomy_version", "result", "created_at"}))

	_, err = repo.GetByID(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

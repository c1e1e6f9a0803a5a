package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"cvscore-backend/internal/engine"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// storedResult is the JSONB shape of the result column. The scalar score
// columns are denormalized for querying; the column holds the full payload.
type storedResult struct {
	Result   engine.Result    `json:"result"`
	JobMatch *engine.JobMatch `json:"jobMatch,omitempty"`
}

// Create inserts a completed analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, user_id, document_id, taxonomy_version, overall_score, rating,
	format_score, content_score, regional_score, regional_relevance, result, created_at
)
VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	payload, err := json.Marshal(storedResult{Result: analysis.Result, JobMatch: analysis.JobMatch})
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.DocumentID,
		analysis.TaxonomyVersion,
		analysis.Result.OverallScore,
		string(analysis.Result.Rating),
		analysis.Result.FormatScore,
		analysis.Result.ContentScore,
		analysis.Result.RegionalContextScore,
		string(analysis.Result.RegionalRelevance),
		payload,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, analysisID string) (Analysis, error) {
	const query = `
SELECT id, user_id, document_id, taxonomy_version, result, created_at
FROM analyses
WHERE user_id = $1 AND id = $2
LIMIT 1`

	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, userID, analysisID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// ListByUser lists analyses for a user ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, user_id, document_id, taxonomy_version, result, created_at
FROM analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var documentID sql.NullString
	var payload []byte
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&documentID,
		&a.TaxonomyVersion,
		&payload,
		&a.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	if documentID.Valid {
		a.DocumentID = documentID.String
	}
	var stored storedResult
	if err := json.Unmarshal(payload, &stored); err != nil {
		return Analysis{}, err
	}
	a.Result = stored.Result
	a.JobMatch = stored.JobMatch
	return a, nil
}

var _ Repo = (*PGRepo)(nil)

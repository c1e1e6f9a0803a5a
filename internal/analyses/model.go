package analyses

import (
	"time"

	"cvscore-backend/internal/engine"
)

// Analysis is one completed scoring run. The engine is synchronous, so an
// analysis is stored with its result in a single write; there is no
// pending state.
type Analysis struct {
	ID              string
	UserID          string
	DocumentID      string // empty for ad-hoc text analyses
	TaxonomyVersion string
	Result          engine.Result
	JobMatch        *engine.JobMatch
	CreatedAt       time.Time
}

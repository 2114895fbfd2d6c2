package domain

import "context"

// AssessmentStore persists completed risk assessments for later audit
// and retrieval.
type AssessmentStore interface {
	Save(ctx context.Context, assessment *RiskAssessment) error
	GetByID(ctx context.Context, id string) (*RiskAssessment, error)
	ListRecent(ctx context.Context, limit int) ([]*RiskAssessment, error)
	Close() error
}

// ResultCache caches computed assessments keyed by a digest of the
// request, so repeated identical requests skip the calculation and the
// store write.
type ResultCache interface {
	Get(ctx context.Context, key string) (*RiskAssessment, bool)
	Set(ctx context.Context, key string, assessment *RiskAssessment) error
}

// TableProvider supplies the immutable Claus lookup tables. The
// calculator assumes the returned set is complete and correctly shaped.
type TableProvider interface {
	Tables() (ClausTables, error)
}

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/claus-risk-server/internal/domain"
)

// RiskRequest carries one risk-assessment request. The family-history
// fields are inlined so callers post a flat document.
type RiskRequest struct {
	PatientAge int `json:"patient_age"`
	domain.FamilyHistory
}

// RiskService orchestrates risk assessment: cache lookup, calculation,
// persistence and audit logging around the pure calculator.
type RiskService struct {
	logger     *logrus.Logger
	calculator *ClausCalculator
	store      domain.AssessmentStore
	cache      domain.ResultCache
}

// NewRiskService creates a risk service. Store and cache may be nil,
// which disables persistence and caching respectively.
func NewRiskService(
	logger *logrus.Logger,
	calculator *ClausCalculator,
	store domain.AssessmentStore,
	cache domain.ResultCache,
) *RiskService {
	return &RiskService{
		logger:     logger,
		calculator: calculator,
		store:      store,
		cache:      cache,
	}
}

// AssessRisk runs one Claus risk calculation and records the outcome.
// A patient outside the supported age range or a history with no
// qualifying relatives yields an assessment with Applicable=false; that
// is a valid outcome, not an error.
func (s *RiskService) AssessRisk(ctx context.Context, req *RiskRequest) (*domain.RiskAssessment, error) {
	startTime := time.Now()

	if req.FamilyHistory.Empty() {
		s.logger.WithField("patient_age", req.PatientAge).
			Debug("Assessment requested without any affected relatives")
	}

	key, keyErr := s.cacheKey(req)
	if keyErr != nil {
		s.logger.WithError(keyErr).Warn("Failed to derive cache key, skipping cache")
	}
	if s.cache != nil && keyErr == nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.logger.WithFields(logrus.Fields{
				"assessment_id": cached.ID,
				"patient_age":   req.PatientAge,
			}).Debug("Returning cached assessment")
			return cached, nil
		}
	}

	risk, applicable := s.calculator.CalculateRisk(req.PatientAge, req.FamilyHistory)

	assessment := &domain.RiskAssessment{
		ID:         uuid.New().String(),
		PatientAge: req.PatientAge,
		History:    req.FamilyHistory,
		Applicable: applicable,
		CreatedAt:  time.Now().UTC(),
	}
	if applicable {
		assessment.Risk = &risk
	}

	if s.store != nil {
		if err := s.store.Save(ctx, assessment); err != nil {
			// The computed result is still valid; persistence is an
			// audit concern, not part of the calculation.
			s.logger.WithError(err).WithField("assessment_id", assessment.ID).
				Warn("Failed to persist assessment")
		}
	}

	if s.cache != nil && keyErr == nil {
		if err := s.cache.Set(ctx, key, assessment); err != nil {
			s.logger.WithError(err).Warn("Failed to cache assessment")
		}
	}

	fields := logrus.Fields{
		"assessment_id":   assessment.ID,
		"patient_age":     req.PatientAge,
		"applicable":      applicable,
		"processing_time": time.Since(startTime),
	}
	if applicable {
		fields["risk"] = risk
	}
	s.logger.WithFields(fields).Info("Completed risk assessment")

	return assessment, nil
}

// GetAssessment retrieves a previously persisted assessment.
func (s *RiskService) GetAssessment(ctx context.Context, id string) (*domain.RiskAssessment, error) {
	if s.store == nil {
		return nil, domain.ErrAssessmentNotFound
	}
	assessment, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment %s: %w", id, err)
	}
	return assessment, nil
}

// ListRecentAssessments returns the most recent persisted assessments.
func (s *RiskService) ListRecentAssessments(ctx context.Context, limit int) ([]*domain.RiskAssessment, error) {
	if s.store == nil {
		return []*domain.RiskAssessment{}, nil
	}
	assessments, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}

// cacheKey derives a stable digest of the request. Identical inputs
// hit the same entry; the digest never leaves the process, so cached
// patient data is not keyed by anything reversible.
func (s *RiskService) cacheKey(req *RiskRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request for cache key: %w", err)
	}
	hash := sha256.Sum256(append([]byte("claus::"), payload...))
	return hex.EncodeToString(hash[:]), nil
}

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claus-risk-server/internal/cache"
	"github.com/claus-risk-server/internal/domain"
	"github.com/claus-risk-server/internal/repository"
)

func newTestRiskService(t *testing.T) (*RiskService, *repository.SQLiteStore) {
	t.Helper()

	store, err := repository.NewSQLiteStore(filepath.Join(t.TempDir(), "assessments.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	resultCache, err := cache.NewMemoryCache(100, time.Minute)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return NewRiskService(logger, newTestCalculator(t), store, resultCache), store
}

func TestRiskService_AssessRisk(t *testing.T) {
	svc, store := newTestRiskService(t)
	ctx := context.Background()

	assessment, err := svc.AssessRisk(ctx, &RiskRequest{
		PatientAge: 40,
		FamilyHistory: domain.FamilyHistory{
			MotherOnsetAge: domain.AgeList{45},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, assessment)

	assert.NotEmpty(t, assessment.ID)
	assert.True(t, assessment.Applicable)
	require.NotNil(t, assessment.Risk)
	assert.InDelta(t, 0.124, *assessment.Risk, 1e-9)
	assert.False(t, assessment.CreatedAt.IsZero())

	// The assessment is persisted for later retrieval.
	stored, err := store.GetByID(ctx, assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, assessment.ID, stored.ID)
	assert.Equal(t, 40, stored.PatientAge)
}

func TestRiskService_AssessRisk_NotApplicable(t *testing.T) {
	svc, _ := newTestRiskService(t)

	assessment, err := svc.AssessRisk(context.Background(), &RiskRequest{
		PatientAge: 85,
		FamilyHistory: domain.FamilyHistory{
			MotherOnsetAge: domain.AgeList{45},
		},
	})
	require.NoError(t, err)

	assert.False(t, assessment.Applicable)
	assert.Nil(t, assessment.Risk)
}

func TestRiskService_AssessRisk_CacheHit(t *testing.T) {
	svc, _ := newTestRiskService(t)
	ctx := context.Background()

	req := &RiskRequest{
		PatientAge: 50,
		FamilyHistory: domain.FamilyHistory{
			MotherOnsetAge:        domain.AgeList{40},
			MaternalAuntOnsetAges: domain.AgeList{35},
		},
	}

	first, err := svc.AssessRisk(ctx, req)
	require.NoError(t, err)

	second, err := svc.AssessRisk(ctx, req)
	require.NoError(t, err)

	// The second identical request is served from cache, so the same
	// assessment comes back rather than a new record.
	assert.Equal(t, first.ID, second.ID)
}

func TestRiskService_CacheKey(t *testing.T) {
	svc, _ := newTestRiskService(t)

	req := &RiskRequest{
		PatientAge: 50,
		FamilyHistory: domain.FamilyHistory{
			MotherOnsetAge:        domain.AgeList{40},
			MaternalAuntOnsetAges: domain.AgeList{35},
		},
	}

	first, err := svc.cacheKey(req)
	require.NoError(t, err)
	second, err := svc.cacheKey(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := svc.cacheKey(&RiskRequest{
		PatientAge:    51,
		FamilyHistory: req.FamilyHistory,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestRiskService_WithoutStoreAndCache(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	svc := NewRiskService(logger, newTestCalculator(t), nil, nil)
	ctx := context.Background()

	assessment, err := svc.AssessRisk(ctx, &RiskRequest{
		PatientAge:    40,
		FamilyHistory: domain.FamilyHistory{MotherOnsetAge: domain.AgeList{45}},
	})
	require.NoError(t, err)
	assert.True(t, assessment.Applicable)

	_, err = svc.GetAssessment(ctx, assessment.ID)
	assert.ErrorIs(t, err, domain.ErrAssessmentNotFound)

	assessments, err := svc.ListRecentAssessments(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, assessments)
}

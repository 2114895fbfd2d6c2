package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/claus-risk-server/internal/domain"
	"github.com/claus-risk-server/internal/service"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"model":     "claus",
		"timestamp": time.Now().UTC(),
	})
}

// handleClausRisk runs one Claus risk assessment. Out-of-range patient
// ages and histories with no qualifying relatives are valid requests
// that yield an inapplicable assessment, not errors.
func (s *Server) handleClausRisk(c *gin.Context) {
	var req service.RiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAPIError(
			domain.ErrCodeInvalidInput,
			"Invalid request body",
			err.Error(),
			c.GetString("correlation_id"),
		))
		return
	}

	assessment, err := s.risk.AssessRisk(c.Request.Context(), &req)
	if err != nil {
		s.logger.WithError(err).Error("Risk assessment failed")
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(
			domain.ErrCodeInternalServer,
			"Risk assessment failed",
			"",
			c.GetString("correlation_id"),
		))
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// handleGetAssessment retrieves a persisted assessment by ID.
func (s *Server) handleGetAssessment(c *gin.Context) {
	id := c.Param("id")

	assessment, err := s.risk.GetAssessment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, domain.NewAPIError(
				domain.ErrCodeNotFound,
				"Assessment not found",
				id,
				c.GetString("correlation_id"),
			))
			return
		}
		s.logger.WithError(err).Error("Failed to load assessment")
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(
			domain.ErrCodeStorage,
			"Failed to load assessment",
			"",
			c.GetString("correlation_id"),
		))
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// handleListAssessments returns the most recent assessments.
func (s *Server) handleListAssessments(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			c.JSON(http.StatusBadRequest, domain.NewAPIError(
				domain.ErrCodeInvalidInput,
				"Invalid limit parameter",
				v,
				c.GetString("correlation_id"),
			))
			return
		}
		limit = n
	}

	assessments, err := s.risk.ListRecentAssessments(c.Request.Context(), limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list assessments")
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(
			domain.ErrCodeStorage,
			"Failed to list assessments",
			"",
			c.GetString("correlation_id"),
		))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessments": assessments,
		"count":       len(assessments),
	})
}

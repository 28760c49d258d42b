// Package web exposes the analyzer over HTTP: a JSON analyze endpoint
// consumed by the bundled single-page UI, plus the page itself.
package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/fetcher"
	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/models"
)

// Pipeline is what the handler needs from the analysis side; it matches
// analyzer.Analyzer and allows a test double.
type Pipeline interface {
	Analyze(ctx context.Context, scrape models.ScrapeResult) models.AnalysisResult
}

// Handler wires the fetcher and the analysis pipeline to HTTP routes.
type Handler struct {
	fetcher  fetcher.ProfileFetcher
	analyzer Pipeline
	log      *logrus.Logger
}

func NewHandler(f fetcher.ProfileFetcher, a Pipeline, log *logrus.Logger) *Handler {
	return &Handler{fetcher: f, analyzer: a, log: log}
}

// AnalyzeRequest is the POST /api/analyze body.
type AnalyzeRequest struct {
	Username string `json:"username" binding:"required"`
}

// AnalyzeResponse is everything the page needs to render one analysis.
type AnalyzeResponse struct {
	AnalysisID  string                `json:"analysis_id"`
	Profile     models.ProfileRecord  `json:"profile"`
	RecentPosts []models.PostSummary  `json:"recent_posts"`
	Analysis    models.AnalysisResult `json:"analysis"`
	Charts      ChartSet              `json:"charts"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

// HandleAnalyze runs fetch + analysis for one username.
func (h *Handler) HandleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "username is required")
		return
	}

	username := normalizeUsername(req.Username)
	if username == "" {
		h.sendError(c, http.StatusBadRequest, "username is required")
		return
	}

	analysisID := uuid.New().String()
	log := h.log.WithFields(logrus.Fields{"analysis_id": analysisID, "username": username})
	log.Info("starting profile analysis")

	scrape := h.fetcher.Fetch(c.Request.Context(), username)
	if !scrape.Success {
		log.WithField("error", scrape.Error).Warn("profile fetch failed")
		h.sendError(c, http.StatusUnprocessableEntity, scrape.Error)
		return
	}

	analysis := h.analyzer.Analyze(c.Request.Context(), scrape)
	if !analysis.Success {
		log.WithField("error", analysis.Error).Error("analysis failed")
		status := http.StatusBadGateway
		if analysis.ErrorKind == models.ErrorKindInvalidInput {
			status = http.StatusUnprocessableEntity
		}
		h.sendError(c, status, analysis.Error)
		return
	}

	log.Info("analysis completed")
	c.JSON(http.StatusOK, AnalyzeResponse{
		AnalysisID:  analysisID,
		Profile:     scrape.Profile,
		RecentPosts: scrape.RecentPosts,
		Analysis:    analysis,
		Charts:      BuildCharts(scrape.Profile, scrape.RecentPosts),
	})
}

// ServeIndex serves the single-page UI.
func (h *Handler) ServeIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handler) sendError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg, StatusCode: status})
}

// normalizeUsername trims whitespace and a leading @.
func normalizeUsername(username string) string {
	username = strings.TrimSpace(username)
	username = strings.TrimPrefix(username, "@")
	if strings.ContainsAny(username, " \t\n") {
		return ""
	}
	return username
}

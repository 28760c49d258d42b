package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/models"
)

type fakeFetcher struct {
	result models.ScrapeResult
	calls  int
	last   string
}

func (f *fakeFetcher) Fetch(_ context.Context, username string) models.ScrapeResult {
	f.calls++
	f.last = username
	return f.result
}

type fakePipeline struct {
	result models.AnalysisResult
	calls  int
}

func (f *fakePipeline) Analyze(_ context.Context, _ models.ScrapeResult) models.AnalysisResult {
	f.calls++
	return f.result
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRouter(f *fakeFetcher, p *fakePipeline) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(f, p, quietLogger())
	r := gin.New()
	r.GET("/", h.ServeIndex)
	r.POST("/api/analyze", h.HandleAnalyze)
	r.GET("/health", h.HandleHealth)
	return r
}

func postAnalyze(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func successfulScrape() models.ScrapeResult {
	return models.ScrapeResult{
		Profile:     models.ProfileRecord{Username: "nasa", Followers: 1000, Following: 50},
		RecentPosts: []models.PostSummary{{Date: "2024-01-01T00:00:00Z", Likes: 42, Caption: "hi"}},
		Success:     true,
	}
}

func TestHandleAnalyze(t *testing.T) {
	t.Run("happy path returns full payload", func(t *testing.T) {
		fetch := &fakeFetcher{result: successfulScrape()}
		pipe := &fakePipeline{result: models.AnalysisResult{
			Success:  true,
			Summary:  "a space agency",
			Insights: models.Insights{ContentStrategy: "photos"},
		}}
		w := postAnalyze(t, newTestRouter(fetch, pipe), `{"username":"nasa"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp AnalyzeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AnalysisID)
		assert.Equal(t, "nasa", resp.Profile.Username)
		assert.Equal(t, "a space agency", resp.Analysis.Summary)
		assert.Equal(t, "photos", resp.Analysis.Insights.ContentStrategy)
		assert.False(t, resp.Charts.EngagementOverview.Empty)
		assert.Equal(t, 1, fetch.calls)
		assert.Equal(t, 1, pipe.calls)
	})

	t.Run("missing username is a 400", func(t *testing.T) {
		fetch := &fakeFetcher{}
		pipe := &fakePipeline{}
		w := postAnalyze(t, newTestRouter(fetch, pipe), `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, fetch.calls)
	})

	t.Run("blank username is a 400", func(t *testing.T) {
		w := postAnalyze(t, newTestRouter(&fakeFetcher{}, &fakePipeline{}), `{"username":"   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("leading @ is stripped before fetching", func(t *testing.T) {
		fetch := &fakeFetcher{result: successfulScrape()}
		pipe := &fakePipeline{result: models.AnalysisResult{Success: true}}
		postAnalyze(t, newTestRouter(fetch, pipe), `{"username":"@nasa"}`)

		assert.Equal(t, "nasa", fetch.last)
	})

	t.Run("fetch failure maps to 422 with envelope error", func(t *testing.T) {
		fetch := &fakeFetcher{result: models.ScrapeResult{
			Success: false,
			Error:   "Profile 'ghost' not found.",
		}}
		pipe := &fakePipeline{}
		w := postAnalyze(t, newTestRouter(fetch, pipe), `{"username":"ghost"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Profile 'ghost' not found.", resp.Error)
		assert.Equal(t, 0, pipe.calls)
	})

	t.Run("generation failure maps to 502", func(t *testing.T) {
		fetch := &fakeFetcher{result: successfulScrape()}
		pipe := &fakePipeline{result: models.AnalysisResult{
			Success:   false,
			ErrorKind: models.ErrorKindGenerationFailed,
			Error:     "AI analysis failed: quota exceeded",
		}}
		w := postAnalyze(t, newTestRouter(fetch, pipe), `{"username":"nasa"}`)

		require.Equal(t, http.StatusBadGateway, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "quota exceeded")
	})
}

func TestServeIndex(t *testing.T) {
	r := newTestRouter(&fakeFetcher{}, &fakePipeline{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Instagram Profile Analyzer")
	assert.Contains(t, w.Body.String(), "/api/analyze")
}

func TestHandleHealth(t *testing.T) {
	r := newTestRouter(&fakeFetcher{}, &fakePipeline{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "nasa", normalizeUsername("  @nasa "))
	assert.Equal(t, "nasa", normalizeUsername("nasa"))
	assert.Equal(t, "", normalizeUsername("   "))
	assert.Equal(t, "", normalizeUsername("two words"))
}

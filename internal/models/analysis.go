package models

// Insights holds the five fixed categories of commentary the model is asked
// to produce. Every field is always a string after normalization, defaulting
// to "" when the model omitted it.
type Insights struct {
	ContentStrategy    string `json:"content_strategy"`
	AudienceEngagement string `json:"audience_engagement"`
	BrandAnalysis      string `json:"brand_analysis"`
	GrowthIndicators   string `json:"growth_indicators"`
	ContentPerformance string `json:"content_performance"`
}

// ErrorKind classifies pipeline failures.
type ErrorKind string

const (
	ErrorKindInvalidInput     ErrorKind = "invalid_input"
	ErrorKindGenerationFailed ErrorKind = "generation_failed"
)

// AnalysisResult is the outcome of one pipeline invocation. When Success is
// true, Summary and all five insight fields are populated strings and
// RawResponse preserves the untouched model output for diagnostics.
// A fully-empty Insights with Success=true is a valid degraded outcome
// (unparseable model output), distinct from an explicit failure.
type AnalysisResult struct {
	Success     bool      `json:"success"`
	ErrorKind   ErrorKind `json:"error_kind,omitempty"`
	Error       string    `json:"error,omitempty"`
	Summary     string    `json:"summary"`
	Insights    Insights  `json:"insights"`
	RawResponse string    `json:"raw_response,omitempty"`
}

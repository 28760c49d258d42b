// Package analyzer turns a scraped Instagram profile into a qualitative
// analysis through a single call to a text-generation model: build a
// deterministic prompt, sanitize the response into JSON, normalize it into
// the fixed result shape.
package analyzer

import (
	"context"
	"fmt"

	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/models"
)

// TextGenerator is the one outbound capability the pipeline needs. It is
// injected so tests can substitute a double and so the process-wide client
// configuration stays out of this package.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analyzer orchestrates the pipeline. It holds no mutable state between
// invocations and is safe for concurrent use.
type Analyzer struct {
	gen TextGenerator
}

func New(gen TextGenerator) *Analyzer {
	return &Analyzer{gen: gen}
}

// Analyze runs the full pipeline against one generation call.
//
// A failed scrape envelope short-circuits with no generation call. A failed
// generation call reports the underlying error text. Malformed model output
// is never a failure: it degrades to empty insight strings with Success=true
// so a garbled response cannot block rendering.
func (a *Analyzer) Analyze(ctx context.Context, scrape models.ScrapeResult) models.AnalysisResult {
	if !scrape.Success {
		return models.AnalysisResult{
			Success:   false,
			ErrorKind: models.ErrorKindInvalidInput,
			Error:     "Invalid profile data provided",
		}
	}

	prompt := BuildPrompt(scrape.Profile, scrape.RecentPosts)

	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return models.AnalysisResult{
			Success:   false,
			ErrorKind: models.ErrorKindGenerationFailed,
			Error:     fmt.Sprintf("AI analysis failed: %v", err),
		}
	}

	summary, insights := Normalize(SanitizeResponse(raw))

	return models.AnalysisResult{
		Success:     true,
		Summary:     summary,
		Insights:    insights,
		RawResponse: raw,
	}
}

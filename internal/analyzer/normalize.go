package analyzer

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/BerylCAtieno/instagram-profile-analyzer/internal/models"
)

// unexpectedFormatSummary replaces the summary when the model returned
// something that is not a JSON object at all.
const unexpectedFormatSummary = "Analysis completed but response format was unexpected."

// coerceString renders an arbitrary decoded JSON value as text. Strings pass
// through, scalars use their printed form, null becomes the empty string and
// composite values render as compact JSON.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

// Normalize coerces whatever the sanitizer produced into the canonical
// summary + five-field insights shape. It never fails: missing or
// wrongly-typed fields default rather than error, and unknown keys are
// dropped.
func Normalize(parsed any) (string, models.Insights) {
	obj, ok := parsed.(map[string]any)
	if !ok {
		return unexpectedFormatSummary, models.Insights{}
	}

	summary := ""
	if v, present := obj["summary"]; present {
		summary = coerceString(v)
	}

	insightsMap, _ := obj["insights"].(map[string]any)
	pick := func(key string) string {
		v, present := insightsMap[key]
		if !present {
			return ""
		}
		return coerceString(v)
	}

	return summary, models.Insights{
		ContentStrategy:    pick("content_strategy"),
		AudienceEngagement: pick("audience_engagement"),
		BrandAnalysis:      pick("brand_analysis"),
		GrowthIndicators:   pick("growth_indicators"),
		ContentPerformance: pick("content_performance"),
	}
}

package analyzer

import (
	"encoding/json"
	"strings"
)

// stripCodeFences removes a leading ``` marker (with an optional language
// tag on the same line) and a trailing ``` marker, then trims whitespace.
func stripCodeFences(text string) string {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "```") {
		if i := strings.Index(t, "\n"); i != -1 {
			t = t[i+1:]
		} else {
			t = t[3:]
		}
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

// SanitizeResponse recovers a JSON value from raw model output, tolerating
// markdown fences and surrounding prose. When strict parsing fails it
// salvages the substring between the first '{' and the last '}'. It never
// returns an error: an unrecoverable input degrades to an empty object.
func SanitizeResponse(raw string) any {
	cleaned := stripCodeFences(raw)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
		return parsed
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		var salvaged any
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &salvaged); err == nil {
			return salvaged
		}
	}

	return map[string]any{}
}

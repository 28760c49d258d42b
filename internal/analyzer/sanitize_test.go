package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeResponse(t *testing.T) {
	t.Run("strict JSON passes through", func(t *testing.T) {
		got := SanitizeResponse(`{"summary":"x","insights":{}}`)
		obj, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "x", obj["summary"])
	})

	t.Run("strips fenced block with language tag", func(t *testing.T) {
		got := SanitizeResponse("```json\n{\"summary\":\"x\",\"insights\":{}}\n```")
		obj, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "x", obj["summary"])
		assert.Equal(t, map[string]any{}, obj["insights"])
	})

	t.Run("strips bare fences", func(t *testing.T) {
		got := SanitizeResponse("```\n{\"summary\":\"y\"}\n```")
		obj, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "y", obj["summary"])
	})

	t.Run("salvages object between braces", func(t *testing.T) {
		got := SanitizeResponse(`garbage {"summary":"ok"} trailing junk`)
		obj, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ok", obj["summary"])
		assert.Len(t, obj, 1)
	})

	t.Run("no braces degrades to empty object", func(t *testing.T) {
		got := SanitizeResponse("no braces here")
		obj, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Empty(t, obj)
	})

	t.Run("unsalvageable braces degrade to empty object", func(t *testing.T) {
		got := SanitizeResponse("{this is not json}")
		obj, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Empty(t, obj)
	})

	t.Run("non-object JSON is preserved for the normalizer", func(t *testing.T) {
		got := SanitizeResponse("[]")
		_, isArray := got.([]any)
		assert.True(t, isArray)
	})

	t.Run("empty input degrades to empty object", func(t *testing.T) {
		got := SanitizeResponse("")
		obj, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Empty(t, obj)
	})
}

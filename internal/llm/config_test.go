package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.NotEmpty(t, cfg.GetModel(TierLite))
	assert.NotEmpty(t, cfg.GetModel(TierStandard))
}

func TestGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierStandard: "gemini-2.5-flash"},
	}

	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierLite), "missing tier falls back to standard")

	cfg = &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"},
	}
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierStandard), "missing standard falls back to lite")

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	base := DefaultConfig()
	original := base.GetModel(TierStandard)

	derived := base.WithModel(TierStandard, "gemini-custom")

	assert.Equal(t, "gemini-custom", derived.GetModel(TierStandard))
	assert.Equal(t, original, base.GetModel(TierStandard))
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), DefaultConfig(), "")
	assert.Error(t, err)
}

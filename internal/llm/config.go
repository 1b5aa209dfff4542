// Package llm provides the client abstraction for the external text-generation
// boundary. The engine never assumes a specific provider beyond "a call that may
// fail with a classifiable error"; Gemini is the default implementation.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short judgments, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured quality verdicts
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: long-form suggestion text
	TierAdvanced ModelTier = "advanced"
)

// Provider represents a text-generation provider
type Provider string

// Supported providers
const (
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the engine
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier, falling back through
// standard and lite when the tier has no explicit entry
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

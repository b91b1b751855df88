package intervene

// Config holds supportive framing generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for framing generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.6,
	}
}

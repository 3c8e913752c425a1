package journey

// Config controls generation parameters.
type Config struct {
	// MaxTokens for journey generation. Journeys are large documents.
	MaxTokens int

	// Temperature for journey generation.
	Temperature float64

	// ActivityMaxTokens for reflection activity generation.
	ActivityMaxTokens int

	// ActivityTemperature runs hotter for creative variety.
	ActivityTemperature float64
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           8192,
		Temperature:         0.7,
		ActivityMaxTokens:   3072,
		ActivityTemperature: 0.8,
	}
}

package watsonx

import "context"

// IWatsonx defines the interface for the watsonx text-generation API client.
// Implementations are safe for concurrent use.
type IWatsonx interface {
	// Generate sends a prompt to the generation endpoint and returns the
	// raw generated text.
	Generate(ctx context.Context, input string) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new watsonx client with the given configuration
func New(cfg Config) (IWatsonx, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newWatsonxImpl(cfg), nil
}

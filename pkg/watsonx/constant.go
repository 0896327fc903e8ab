package watsonx

import "time"

const (
	// DefaultRegion is the default IBM Cloud region
	DefaultRegion = "us-south"

	// APIVersion is the text-generation API version pin
	APIVersion = "2023-05-29"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// Greedy decoding parameters used for every generation call
	DecodingMethod    = "greedy"
	MaxNewTokens      = 300
	RepetitionPenalty = 1.1
)

package watsonx

import (
	"fmt"
	"net/http"
)

// Config holds watsonx client configuration
type Config struct {
	APIKey     string
	ProjectID  string
	ModelID    string
	Region     string
	BaseURL    string // overrides the region-derived base URL when set
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("watsonx: APIKey is required")
	}
	if c.ModelID == "" {
		return fmt.Errorf("watsonx: ModelID is required")
	}
	if c.ProjectID == "" {
		return fmt.Errorf("watsonx: ProjectID is required")
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.BaseURL == "" {
		c.BaseURL = fmt.Sprintf("https://%s.ml.cloud.ibm.com", c.Region)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// watsonxImpl is the internal implementation of IWatsonx
type watsonxImpl struct {
	apiKey     string
	projectID  string
	modelID    string
	baseURL    string
	httpClient *http.Client
}

// generateRequest is the wire format of a text-generation call
type generateRequest struct {
	Input      string             `json:"input"`
	Parameters generateParameters `json:"parameters"`
	ModelID    string             `json:"model_id"`
	ProjectID  string             `json:"project_id"`
}

type generateParameters struct {
	DecodingMethod    string  `json:"decoding_method"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

// generateResponse is the wire format of a text-generation response
type generateResponse struct {
	Results []generateResult `json:"results"`
}

type generateResult struct {
	GeneratedText string `json:"generated_text"`
	StopReason    string `json:"stop_reason"`
}

package watsonx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newWatsonxImpl creates a new watsonx implementation
func newWatsonxImpl(cfg Config) *watsonxImpl {
	return &watsonxImpl{
		apiKey:     cfg.APIKey,
		projectID:  cfg.ProjectID,
		modelID:    cfg.ModelID,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends a generation request to the watsonx API
func (w *watsonxImpl) Generate(ctx context.Context, input string) (string, error) {
	reqBody := generateRequest{
		Input: input,
		Parameters: generateParameters{
			DecodingMethod:    DecodingMethod,
			MaxNewTokens:      MaxNewTokens,
			RepetitionPenalty: RepetitionPenalty,
		},
		ModelID:   w.modelID,
		ProjectID: w.projectID,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("watsonx: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/ml/v1/text/generation?version=%s", w.baseURL, APIVersion)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("watsonx: failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+w.apiKey)

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("watsonx: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("watsonx: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("watsonx: failed to decode response: %w", err)
	}

	if len(genResp.Results) == 0 {
		return "", nil
	}
	return genResp.Results[0].GeneratedText, nil
}

// Model returns the model being used
func (w *watsonxImpl) Model() string {
	return w.modelID
}

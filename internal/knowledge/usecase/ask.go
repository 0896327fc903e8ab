package usecase

import (
	"context"
	"fmt"
	"strings"

	"meeting-concierge/internal/knowledge"
	"meeting-concierge/pkg/qdrant"
)

// Ask retrieves the most relevant chunks for the query and asks the gateway
// to answer from them. Answers are cached per query until the next Train.
func (uc *implUseCase) Ask(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", knowledge.ErrEmptyQuery
	}
	if !uc.isTrained() {
		return "", knowledge.ErrNotTrained
	}

	if answer, ok := uc.cache.Get(query); ok {
		uc.l.Debugf(ctx, "Ask: cache hit for %q", query)
		return answer, nil
	}

	vectors, err := uc.embedder.Embed(ctx, []string{query})
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return "", fmt.Errorf("embedder returned no vector for query")
	}

	res, err := uc.store.SearchPoints(ctx, uc.cfg.Collection, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       uc.cfg.TopK,
		WithPayload: true,
	})
	if err != nil {
		return "", fmt.Errorf("search points: %w", err)
	}

	var contextBuilder strings.Builder
	for _, point := range res.Result {
		if text, ok := point.Payload["text"].(string); ok {
			contextBuilder.WriteString(text)
			contextBuilder.WriteString("\n\n")
		}
	}

	answer, err := uc.gateway.Generate(ctx, fmt.Sprintf(answerPrompt, strings.TrimSpace(contextBuilder.String()), query))
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	uc.cache.Add(query, answer)
	return answer, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"meeting-concierge/internal/knowledge"
	"meeting-concierge/pkg/qdrant"
)

// Train extracts text from the uploaded PDFs, chunks and embeds it and
// upserts the vectors. The knowledge base answers questions only after the
// first successful run.
func (uc *implUseCase) Train(ctx context.Context, files []knowledge.UploadedFile) (knowledge.TrainOutput, error) {
	uc.l.Infof(ctx, "Train: received %d files", len(files))

	if len(files) == 0 {
		return knowledge.TrainOutput{}, knowledge.ErrNoFiles
	}

	var texts []string
	for _, f := range files {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".pdf") {
			uc.l.Warnf(ctx, "Train: skipping non-PDF file %s", f.Name)
			continue
		}

		text, err := uc.extract(f.Content)
		if err != nil {
			uc.l.Errorf(ctx, "Train: extract %s: %v", f.Name, err)
			return knowledge.TrainOutput{}, fmt.Errorf("Failed to process %s: %v", f.Name, err)
		}
		if strings.TrimSpace(text) == "" {
			uc.l.Warnf(ctx, "Train: no text in %s", f.Name)
			continue
		}
		texts = append(texts, text)
	}

	if len(texts) == 0 {
		return knowledge.TrainOutput{}, knowledge.ErrNoContent
	}

	var chunks []string
	for _, text := range texts {
		chunks = append(chunks, splitText(text, uc.cfg.ChunkSize, uc.cfg.ChunkOverlap)...)
	}
	uc.l.Infof(ctx, "Train: split %d documents into %d chunks", len(texts), len(chunks))

	vectors, err := uc.embedder.Embed(ctx, chunks)
	if err != nil {
		return knowledge.TrainOutput{}, fmt.Errorf("embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return knowledge.TrainOutput{}, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	if err := uc.store.CreateCollection(ctx, qdrant.CreateCollectionRequest{
		Name: uc.cfg.Collection,
		Vectors: qdrant.VectorConfig{
			Size:     uc.cfg.VectorSize,
			Distance: distanceCosine,
		},
	}); err != nil {
		return knowledge.TrainOutput{}, fmt.Errorf("create collection: %w", err)
	}

	points := make([]qdrant.Point, 0, len(chunks))
	for i, chunk := range chunks {
		points = append(points, qdrant.Point{
			ID:     uuid.NewString(),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"text":  chunk,
				"chunk": i,
			},
		})
	}
	if err := uc.store.UpsertPoints(ctx, uc.cfg.Collection, qdrant.UpsertPointsRequest{Points: points}); err != nil {
		return knowledge.TrainOutput{}, fmt.Errorf("upsert points: %w", err)
	}

	uc.markTrained()
	uc.cache.Purge()

	uc.l.Infof(ctx, "Train: stored %d chunks in %s", len(points), uc.cfg.Collection)
	return knowledge.TrainOutput{Documents: len(texts), Chunks: len(chunks)}, nil
}

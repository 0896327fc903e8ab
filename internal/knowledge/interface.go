package knowledge

import (
	"context"

	"meeting-concierge/pkg/qdrant"
)

// UseCase defines the business logic interface for the knowledge domain.
type UseCase interface {
	// Train ingests a batch of PDF documents into the vector store and
	// marks the knowledge base ready for questions. Non-PDF files are
	// skipped with a warning.
	Train(ctx context.Context, files []UploadedFile) (TrainOutput, error)

	// Ask answers a question from the ingested documents. Returns
	// ErrNotTrained until a document batch has been ingested.
	Ask(ctx context.Context, query string) (string, error)
}

// VectorStore abstracts the qdrant client for mocking.
type VectorStore interface {
	CreateCollection(ctx context.Context, req qdrant.CreateCollectionRequest) error
	UpsertPoints(ctx context.Context, collectionName string, req qdrant.UpsertPointsRequest) error
	SearchPoints(ctx context.Context, collectionName string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error)
}

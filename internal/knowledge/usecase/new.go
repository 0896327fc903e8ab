package usecase

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"meeting-concierge/internal/knowledge"
	pkgLog "meeting-concierge/pkg/log"
	"meeting-concierge/pkg/voyage"
	"meeting-concierge/pkg/watsonx"
)

// Config tunes chunking, retrieval and caching.
type Config struct {
	Collection   string
	VectorSize   int
	ChunkSize    int
	ChunkOverlap int
	TopK         int
	CacheSize    int
}

type implUseCase struct {
	l        pkgLog.Logger
	embedder voyage.IVoyage
	store    knowledge.VectorStore
	gateway  watsonx.IWatsonx
	cfg      Config
	cache    *lru.Cache[string, string]
	extract  func(content []byte) (string, error)

	mu      sync.RWMutex
	trained bool
}

// New creates a new knowledge UseCase instance.
func New(
	l pkgLog.Logger,
	embedder voyage.IVoyage,
	store knowledge.VectorStore,
	gateway watsonx.IWatsonx,
	cfg Config,
) (*implUseCase, error) {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		cfg.ChunkOverlap = DefaultChunkOverlap
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, string](cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &implUseCase{
		l:        l,
		embedder: embedder,
		store:    store,
		gateway:  gateway,
		cfg:      cfg,
		cache:    cache,
		extract:  extractPDF,
	}, nil
}

func (uc *implUseCase) isTrained() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.trained
}

func (uc *implUseCase) markTrained() {
	uc.mu.Lock()
	uc.trained = true
	uc.mu.Unlock()
}

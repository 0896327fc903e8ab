package usecase

// Chunking and retrieval defaults.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 100
	DefaultTopK         = 5
	DefaultCacheSize    = 128

	distanceCosine = "Cosine"
)

// answerPrompt grounds the gateway answer in the retrieved chunks.
const answerPrompt = `Answer the question using only the following company documents. If the documents do not contain the answer, say so.

Documents:
%s

Question: %s
Answer:`

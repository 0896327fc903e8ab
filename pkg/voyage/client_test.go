package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meeting-concierge/pkg/voyage"
)

func TestNew(t *testing.T) {
	if _, err := voyage.New(""); err == nil {
		t.Errorf("expected error for empty API key")
	}
	if _, err := voyage.New("key"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEmbed(t *testing.T) {
	var gotReq voyage.EmbedRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(voyage.EmbedResponse{
			Object: "list",
			Data: []voyage.EmbeddingData{
				{Object: "embedding", Embedding: []float32{0.1, 0.2}, Index: 0},
				{Object: "embedding", Embedding: []float32{0.3, 0.4}, Index: 1},
			},
		})
	}))
	defer ts.Close()

	client, _ := voyage.New("test-key")
	client = client.WithBaseURL(ts.URL)

	embeddings, err := client.Embed(context.Background(), []string{"chunk one", "chunk two"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(embeddings) != 2 {
		t.Fatalf("expected 2 embeddings, got %d", len(embeddings))
	}
	if embeddings[0][1] != 0.2 {
		t.Errorf("unexpected embedding value: %v", embeddings[0])
	}
	if len(gotReq.Input) != 2 || gotReq.Input[0] != "chunk one" {
		t.Errorf("unexpected request input: %+v", gotReq.Input)
	}
}

func TestEmbedErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
	}))
	defer ts.Close()

	client, _ := voyage.New("test-key")
	client = client.WithBaseURL(ts.URL)

	if _, err := client.Embed(context.Background(), nil); err == nil {
		t.Errorf("expected error for empty input")
	}
	if _, err := client.Embed(context.Background(), []string{"x"}); err == nil {
		t.Errorf("expected error on API failure")
	}
}

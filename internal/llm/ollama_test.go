package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_Enrich(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Stream {
			t.Error("expected non-streaming request")
		}
		if req.Model != "llama3.1:8b" {
			t.Errorf("model = %q", req.Model)
		}

		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:           "llama3.1:8b",
			Response:        "품질 불만이 많습니다.\n- 실밥 마감 불량",
			Done:            true,
			PromptEvalCount: 120,
			EvalCount:       40,
		})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.1:8b"})
	if err != nil {
		t.Fatalf("NewOllamaProvider() error = %v", err)
	}

	resp, err := provider.Enrich(context.Background(), EnrichRequest{Digest: "digest"})
	if err != nil {
		t.Fatalf("Enrich() error = %v", err)
	}

	if resp.Model != "llama3.1:8b" {
		t.Errorf("Model = %q", resp.Model)
	}
	if resp.TokensUsed != 160 {
		t.Errorf("TokensUsed = %d, want 160", resp.TokensUsed)
	}

	summary, issues := ParseInsights(resp.Text)
	if summary != "품질 불만이 많습니다." || len(issues) != 1 {
		t.Errorf("parsed = %q, %v", summary, issues)
	}
}

func TestOllamaProvider_EnrichWithoutModel(t *testing.T) {
	provider, err := NewOllamaProvider(Config{})
	if err != nil {
		t.Fatalf("NewOllamaProvider() error = %v", err)
	}

	if _, err := provider.Enrich(context.Background(), EnrichRequest{Digest: "digest"}); err == nil {
		t.Error("Expected error when no model is configured")
	}
}

func TestOllamaProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	provider, _ := NewOllamaProvider(Config{BaseURL: server.URL, Model: "missing"})

	if _, err := provider.Enrich(context.Background(), EnrichRequest{Digest: "digest"}); err == nil {
		t.Error("Expected error from API failure")
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	provider, _ := NewOllamaProvider(Config{BaseURL: server.URL})
	if !provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be available")
	}

	server.Close()
	if provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be unavailable after shutdown")
	}
}

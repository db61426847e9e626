package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aura-ai/aura-backend/pkg/config"
)

func testConfig(baseURL string) *config.GenerationConfig {
	return &config.GenerationConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "gemini-2.5-flash",
		Timeout:     5 * time.Second,
		MaxRetries:  2,
		Temperature: 0.3,
	}
}

func reply(w http.ResponseWriter, text string) {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	json.NewEncoder(w).Encode(resp)
}

func TestGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		reply(w, "generated answer")
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	text, err := client.Generate(context.Background(), "what was decided?")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "generated answer" {
		t.Errorf("text = %q, want %q", text, "generated answer")
	}
	if gotPath != "/models/gemini-2.5-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if len(gotReq.Contents) != 1 || gotReq.Contents[0].Parts[0].Text != "what was decided?" {
		t.Errorf("unexpected request contents: %+v", gotReq.Contents)
	}
	if gotReq.Config == nil || gotReq.Config.Temperature != 0.3 {
		t.Errorf("unexpected generation config: %+v", gotReq.Config)
	}
}

func TestGenerateWithHistory(t *testing.T) {
	var gotReq generateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		reply(w, "ok")
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	history := []Turn{
		{Role: "user", Text: "first question"},
		{Role: "model", Text: "first answer"},
	}
	if _, err := client.GenerateWithHistory(context.Background(), history, "follow-up"); err != nil {
		t.Fatalf("GenerateWithHistory: %v", err)
	}

	if len(gotReq.Contents) != 3 {
		t.Fatalf("contents length = %d, want 3", len(gotReq.Contents))
	}
	if gotReq.Contents[0].Role != "user" || gotReq.Contents[1].Role != "model" {
		t.Errorf("history roles = %q, %q", gotReq.Contents[0].Role, gotReq.Contents[1].Role)
	}
	if last := gotReq.Contents[2]; last.Role != "user" || last.Parts[0].Text != "follow-up" {
		t.Errorf("last turn = %+v", last)
	}
}

func TestGenerateRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		reply(w, "after retry")
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	text, err := client.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "after retry" {
		t.Errorf("text = %q", text)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}

func TestGenerateDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"invalid key"}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error on 400 response")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestWithKey(t *testing.T) {
	var gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		reply(w, "ok")
	}))
	defer ts.Close()

	base := NewClient(testConfig(ts.URL))

	if same := base.WithKey(""); same != base {
		t.Error("empty key should keep the base client")
	}

	custom := base.WithKey("user-key")
	if custom == base {
		t.Error("WithKey should return a clone")
	}
	if _, err := custom.Generate(context.Background(), "prompt"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gotKey != "user-key" {
		t.Errorf("api key header = %q, want %q", gotKey, "user-key")
	}

	if _, err := base.Generate(context.Background(), "prompt"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("base client api key header = %q, want %q", gotKey, "test-key")
	}
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Complete(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "  {\"action\": \"show_favorites\"}  "}}]}`))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "gsk_test", URL: srv.URL, Model: "llama-3.1-8b-instant"})
	content, err := client.Complete(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if content != `{"action": "show_favorites"}` {
		t.Errorf("content = %q, want trimmed JSON", content)
	}
	if gotAuth != "Bearer gsk_test" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotReq.Model != "llama-3.1-8b-instant" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
	if gotReq.MaxTokens != maxTokens {
		t.Errorf("max_tokens = %d", gotReq.MaxTokens)
	}
}

func TestClient_CompleteWithoutKey(t *testing.T) {
	client := New(Config{})
	if _, err := client.Complete(context.Background(), "s", "u"); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestClient_CompleteNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "gsk_bad", URL: srv.URL})
	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestClient_CompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "gsk_test", URL: srv.URL})
	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected an error for an empty choices list")
	}
}

func TestSanitizeAPIKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gsk_abc", "gsk_abc"},
		{"  gsk_abc  ", "gsk_abc"},
		{"gsk_abc https://console.groq.com/keys", "gsk_abc"},
		{"https://console.groq.com/keys", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeAPIKey(tt.in); got != tt.want {
			t.Errorf("sanitizeAPIKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

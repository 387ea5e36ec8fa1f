package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	apiKey := "test-api-key"
	model := "gpt-3.5-turbo"
	client := NewClient(apiKey, model)

	if client == nil {
		t.Fatal("Expected non-nil client")
	}

	if client.apiKey != apiKey {
		t.Errorf("Expected API key '%s', got '%s'", apiKey, client.apiKey)
	}

	if client.model != model {
		t.Errorf("Expected model '%s', got '%s'", model, client.model)
	}

	if client.endpoint != ChatAPIEndpoint {
		t.Errorf("Expected endpoint '%s', got '%s'", ChatAPIEndpoint, client.endpoint)
	}

	if client.httpClient == nil {
		t.Error("Expected non-nil HTTP client")
	}
}

func TestNewClientDefaultModel(t *testing.T) {
	client := NewClient("test-key", "")

	if client.model != ChatModel {
		t.Errorf("Expected default model '%s', got '%s'", ChatModel, client.model)
	}
}

func chatServerReturning(t *testing.T, text string) (server *httptest.Server) {
	t.Helper()

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chatResp := ChatResponse{
			ID:     "test-id",
			Object: "chat.completion",
			Model:  ChatModel,
			Choices: []Choice{
				{
					Index: 0,
					Message: Message{
						Role:    "assistant",
						Content: text,
					},
					FinishReason: "stop",
				},
			},
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(chatResp)
	}))

	return server
}

func TestComplete(t *testing.T) {
	var gotReq ChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request.
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}

		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing or incorrect Authorization header")
		}

		if r.Header.Get("Content-Type") != "application/json" {
			t.Error("Missing Content-Type header")
		}

		_ = json.NewDecoder(r.Body).Decode(&gotReq)

		chatResp := ChatResponse{
			Choices: []Choice{
				{
					Message: Message{
						Role:    "assistant",
						Content: "  generated text  \n",
					},
				},
			},
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(chatResp)
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	ctx := context.Background()
	content, err := client.Complete(ctx, "You are a test persona.", "Do the thing.", 0.4)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if content != "generated text" {
		t.Errorf("Expected trimmed content 'generated text', got '%s'", content)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(gotReq.Messages))
	}

	if gotReq.Messages[0].Role != "system" {
		t.Errorf("Expected first message role 'system', got '%s'", gotReq.Messages[0].Role)
	}

	if gotReq.Messages[1].Role != "user" {
		t.Errorf("Expected second message role 'user', got '%s'", gotReq.Messages[1].Role)
	}

	if gotReq.Temperature != 0.4 {
		t.Errorf("Expected temperature 0.4, got %v", gotReq.Temperature)
	}
}

func TestAPIError(t *testing.T) {
	// Create test server that returns an error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Invalid request"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	ctx := context.Background()
	_, err := client.Complete(ctx, "persona", "prompt", 0.3)
	if err == nil {
		t.Error("Expected error for bad request, got nil")
	}

	if !strings.Contains(err.Error(), "400") {
		t.Errorf("Error should mention status code 400: %v", err)
	}
}

func TestEmptyChoices(t *testing.T) {
	// Create test server that returns an empty choices array.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chatResp := ChatResponse{
			Choices: []Choice{},
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(chatResp)
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	ctx := context.Background()
	_, err := client.Complete(ctx, "persona", "prompt", 0.3)
	if err == nil {
		t.Error("Expected error for empty choices, got nil")
	}

	if !strings.Contains(err.Error(), "no choices") {
		t.Errorf("Error should mention 'no choices': %v", err)
	}
}

func TestInvalidJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not valid json"))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	ctx := context.Background()
	_, err := client.Complete(ctx, "persona", "prompt", 0.3)
	if err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}

func TestContextCancellation(t *testing.T) {
	// Create test server that delays response.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.endpoint = server.URL

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, "persona", "prompt", 0.3)
	if err == nil {
		t.Error("Expected error for cancelled context, got nil")
	}
}

func TestHTTPClientTimeout(t *testing.T) {
	client := NewClient("test-key", "")

	// Verify timeout is set.
	if client.httpClient.Timeout != 120*time.Second {
		t.Errorf("Expected timeout 120s, got %v", client.httpClient.Timeout)
	}
}

func TestStripMarkdownCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "with json code fence",
			input:    "```json\n{\"test\": \"value\"}\n```",
			expected: "{\"test\": \"value\"}",
		},
		{
			name:     "without code fence",
			input:    "{\"test\": \"value\"}",
			expected: "{\"test\": \"value\"}",
		},
		{
			name:     "with extra whitespace",
			input:    "```json\n{\"test\": \"value\"}\n\n```",
			expected: "{\"test\": \"value\"}",
		},
		{
			name:     "multiline json",
			input:    "```json\n{\n  \"test\": \"value\"\n}\n```",
			expected: "{\n  \"test\": \"value\"\n}",
		},
		{
			name:     "plain text",
			input:    "This is plain text",
			expected: "This is plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripMarkdownCodeFences(tt.input)
			if result != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, result)
			}
		})
	}
}

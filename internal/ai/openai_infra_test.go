package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_GetCompletion(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"  Possibility: True\nReason: ok  "}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClientWithBaseURL("sk-test", srv.URL+"/v1", "gpt-4o-mini", 150)
	out, err := c.GetCompletion(context.Background(), []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: "hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Possibility: True\nReason: ok", out)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 150, got.MaxTokens)
	assert.Less(t, got.Temperature, float32(0.001))
	require.Len(t, got.Messages, 1)
}

func TestOpenAIClient_GetCompletion_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"message":"boom","type":"server_error"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewOpenAIClientWithBaseURL("sk-test", srv.URL+"/v1", "gpt-4o-mini", 150)
			_, err := c.GetCompletion(context.Background(), nil)
			assert.Error(t, err)
		})
	}
}

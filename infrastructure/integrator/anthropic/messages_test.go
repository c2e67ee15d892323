package anthropic

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-report-analyzer/internal/config"
)

func newTestClient(url, apiKey string) Client {
	return NewClient(&config.Config{Narrative: config.Narrative{
		URL:        url,
		APIKey:     apiKey,
		Model:      "test-model",
		MaxTokens:  1500,
		APIVersion: "2023-06-01",
	}})
}

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"model":"test-model","max_tokens":1500,"messages":[{"role":"user","content":"diagnóstico"}]}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","content":[{"type":"text","text":"Parte 1. "},{"type":"text","text":"Parte 2."}],"stop_reason":"end_turn"}`))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL, "secret").Complete(context.Background(), "diagnóstico")

	require.NoError(t, err)
	assert.Equal(t, "Parte 1. Parte 2.", text)
}

func TestCompleteErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "erro da API com mensagem",
			status:  http.StatusUnauthorized,
			body:    `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`,
			wantErr: "invalid x-api-key",
		},
		{
			name:    "erro sem corpo",
			status:  http.StatusBadGateway,
			body:    ``,
			wantErr: "502",
		},
		{
			name:    "resposta sem texto",
			status:  http.StatusOK,
			body:    `{"id":"msg_1","content":[]}`,
			wantErr: ErrEmptyResponse.Error(),
		},
		{
			name:    "json inválido",
			status:  http.StatusOK,
			body:    `{`,
			wantErr: "erro ao decodificar resposta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL, "secret").Complete(context.Background(), "prompt")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCompleteWithoutAPIKey(t *testing.T) {
	_, err := newTestClient("http://localhost", "").Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCompleteCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL, "secret").Complete(ctx, "prompt")

	assert.ErrorIs(t, err, context.Canceled)
}

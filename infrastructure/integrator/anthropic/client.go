package anthropic

import (
	"context"
	"net/http"

	"github.com/vfg2006/ad-report-analyzer/internal/config"
)

const userRole = "user"

// Client gera texto a partir de um prompt único
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type AnthropicClient struct {
	httpClient *http.Client
	config     config.Narrative
}

// NewClient cria o cliente da API de mensagens. Sem timeout configurado, a
// chamada dura o quanto o contexto permitir.
func NewClient(cfg *config.Config) Client {
	return &AnthropicClient{
		httpClient: &http.Client{
			Timeout: cfg.Narrative.Timeout,
		},
		config: cfg.Narrative,
	}
}

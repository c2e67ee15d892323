package anthropic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	anthropicdomain "github.com/vfg2006/ad-report-analyzer/infrastructure/integrator/anthropic/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrNotConfigured = errors.New("narrative API key not configured")
	ErrEmptyResponse = errors.New("narrative API returned no text")
)

// Complete envia o prompt como uma única mensagem de usuário e devolve o texto da resposta
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.config.APIKey == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(anthropicdomain.MessagesRequest{
		Model:     c.config.Model,
		MaxTokens: c.config.MaxTokens,
		Messages: []anthropicdomain.Message{
			{Role: userRole, Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.config.APIKey)
	req.Header.Set("anthropic-version", c.config.APIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return "", errors.Wrap(err, "erro de comunicação com a API de narrativa")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr anthropicdomain.ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("API de narrativa respondeu %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("API de narrativa respondeu %s", resp.Status)
	}

	var response anthropicdomain.MessagesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", errors.Wrap(err, "erro ao decodificar resposta")
	}

	text := response.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

package anthropicdomain

// MessagesRequest é o corpo enviado para a API de mensagens
type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MessagesResponse contém apenas os campos usados da resposta
type MessagesResponse struct {
	ID         string         `json:"id"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Text concatena os blocos de texto da resposta
func (r *MessagesResponse) Text() string {
	text := ""
	for _, block := range r.Content {
		text += block.Text
	}
	return text
}

package anthropicdomain

// ErrorResponse representa a estrutura de erro da API de mensagens
type ErrorResponse struct {
	Type  string       `json:"type"`
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes do erro
type ErrorDetails struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

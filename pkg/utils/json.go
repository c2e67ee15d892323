package utils

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON serializa a resposta com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// DecodeJSON lê no máximo limit bytes do corpo
func DecodeJSON(body io.Reader, limit int64, out any) error {
	return json.NewDecoder(io.LimitReader(body, limit)).Decode(out)
}

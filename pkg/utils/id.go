package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// NewDatasetID gera o identificador curto de uma carga de dataset
func NewDatasetID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de análise
var (
	// Erros de dataset
	ErrNoDataset    = errors.New("no dataset loaded")
	ErrEmptyDataset = errors.New("dataset has no valid rows")

	// Erros de consulta
	ErrChannelNotFound     = errors.New("channel not found")
	ErrInvalidQuery        = errors.New("invalid query")
	ErrForecastUnavailable = errors.New("forecast unavailable")
)

// AnalysisError é um erro com contexto adicional para as análises
type AnalysisError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

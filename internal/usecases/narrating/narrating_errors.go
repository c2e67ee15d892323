package narrating

import (
	"errors"
	"fmt"
)

var (
	ErrNarrativeFailed = errors.New("narrative generation failed")
)

// NarrativeError carrega o código de API e a mensagem devolvida pelo gerador
type NarrativeError struct {
	Err     error
	Code    string
	Details string
}

func (e *NarrativeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *NarrativeError) Unwrap() error {
	return e.Err
}

func NewNarrativeError(err error, code string, details string) *NarrativeError {
	return &NarrativeError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

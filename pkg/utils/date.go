package utils

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrEmptyDate = errors.New("data não informada")

// ParseDate lê uma data YYYY-MM-DD; texto vazio é erro
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyDate
	}
	return time.Parse(DateLayout, value)
}

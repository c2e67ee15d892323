package utils

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryInt lê um inteiro da query string, devolvendo def quando ausente
func QueryInt(values url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// QueryList lê um parâmetro repetido (groups=A&groups=B), ignorando valores vazios.
// Os valores não são divididos por vírgula, que pode fazer parte de um nome.
func QueryList(values url.Values, key string) []string {
	var items []string
	for _, raw := range values[key] {
		if item := strings.TrimSpace(raw); item != "" {
			items = append(items, item)
		}
	}
	return items
}

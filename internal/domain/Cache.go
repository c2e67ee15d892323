package domain

import (
	"strconv"
	"strings"
)

// JoinCacheKey monta uma chave do cache de visões com cada parte entre aspas,
// para que textos livres contendo o separador não colidam
func JoinCacheKey(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, part := range parts {
		quoted[i] = strconv.Quote(part)
	}
	return strings.Join(quoted, ":")
}

package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNoHeader = errors.New("arquivo sem cabeçalho")

	candidateDelimiters = []rune{',', '\t', '|', ';'}
	utf8BOM             = []byte{0xEF, 0xBB, 0xBF}
)

// ParseDelimited lê um texto delimitado com cabeçalho e devolve um mapa
// coluna -> valor por linha. O delimitador é deduzido da linha de cabeçalho.
func ParseDelimited(r io.Reader) ([]map[string]string, error) {
	reader := bufio.NewReader(r)

	if prefix, err := reader.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = reader.Discard(len(utf8BOM))
	}

	headerLine, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}
	if strings.TrimSpace(headerLine) == "" {
		return nil, ErrNoHeader
	}

	csvReader := csv.NewReader(io.MultiReader(strings.NewReader(headerLine), reader))
	csvReader.Comma = DetectDelimiter(headerLine)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar cabeçalho")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := make([]map[string]string, 0)
	for {
		fields, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler linha %d", len(records)+2)
		}
		if isBlank(fields) {
			continue
		}

		record := make(map[string]string, len(header))
		for i, column := range header {
			if column == "" {
				continue
			}
			if i < len(fields) {
				record[column] = strings.TrimSpace(fields[i])
			} else {
				record[column] = ""
			}
		}
		records = append(records, record)
	}

	return records, nil
}

// DetectDelimiter escolhe o candidato mais frequente fora de aspas.
// Sem nenhum candidato, assume vírgula.
func DetectDelimiter(line string) rune {
	counts := make(map[rune]int, len(candidateDelimiters))
	quoted := false
	for _, ch := range line {
		if ch == '"' {
			quoted = !quoted
			continue
		}
		if !quoted {
			counts[ch]++
		}
	}

	best := ','
	bestCount := 0
	for _, delimiter := range candidateDelimiters {
		if counts[delimiter] > bestCount {
			best = delimiter
			bestCount = counts[delimiter]
		}
	}
	return best
}

func isBlank(fields []string) bool {
	for _, field := range fields {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

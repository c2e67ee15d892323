package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/database/postgres"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const insertBatchSize = 500

// RawRecordRepository guarda os registros brutos do relatório como JSONB,
// um registro por linha, na ordem de importação.
type RawRecordRepository interface {
	List(ctx context.Context) ([]map[string]string, error)
	Replace(ctx context.Context, records []map[string]string) (int, error)
}

type rawRecordRepository struct {
	conn  *postgres.Connection
	table string
}

func NewRawRecordRepository(conn *postgres.Connection, table string) RawRecordRepository {
	return &rawRecordRepository{
		conn:  conn,
		table: pq.QuoteIdentifier(table),
	}
}

func (r *rawRecordRepository) List(ctx context.Context) ([]map[string]string, error) {
	query, args, err := squirrel.
		Select("record").
		From(r.table).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar registros: %w", err)
	}
	defer rows.Close()

	records := make([]map[string]string, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}

		record, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("erro ao decodificar registro: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar registros: %w", err)
	}

	return records, nil
}

// Replace apaga todos os registros e grava os novos na mesma transação
func (r *rawRecordRepository) Replace(ctx context.Context, records []map[string]string) (int, error) {
	deleteQuery, _, err := squirrel.Delete(r.table).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	importedAt := time.Now().UTC()
	inserted := 0

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery); err != nil {
			return fmt.Errorf("erro ao limpar registros: %w", err)
		}

		for start := 0; start < len(records); start += insertBatchSize {
			end := min(start+insertBatchSize, len(records))

			builder := squirrel.
				Insert(r.table).
				Columns("record", "imported_at").
				PlaceholderFormat(squirrel.Dollar)
			for _, record := range records[start:end] {
				payload, err := json.Marshal(record)
				if err != nil {
					return fmt.Errorf("erro ao serializar registro: %w", err)
				}
				builder = builder.Values(string(payload), importedAt)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir registros: %w", err)
			}
			inserted += end - start
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// decodeRecord aceita valores JSON de qualquer tipo escalar e os devolve como texto
func decodeRecord(raw []byte) (map[string]string, error) {
	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}

	record := make(map[string]string, len(values))
	for key, value := range values {
		switch v := value.(type) {
		case nil:
			record[key] = ""
		case string:
			record[key] = v
		case float64:
			record[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			record[key] = strconv.FormatBool(v)
		default:
			record[key] = fmt.Sprint(v)
		}
	}
	return record, nil
}

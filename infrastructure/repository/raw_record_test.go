package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-report-analyzer/infrastructure/database/postgres"
)

func newRawRecordRepository(t *testing.T) (RawRecordRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRawRecordRepository(&postgres.Connection{DB: db}, "ad_report_records"), mock
}

func TestRawRecordRepository_List(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    []map[string]string
		wantErr bool
	}{
		{
			name: "Converte valores JSON em texto",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT record FROM "ad_report_records" ORDER BY id ASC`)).
					WillReturnRows(sqlmock.NewRows([]string{"record"}).
						AddRow([]byte(`{"date":"2024-01-01","cost":1200.5,"clicks":30,"memo":null,"active":true}`)).
						AddRow([]byte(`{"date":"2024-01-02","cost":"900"}`)))
			},
			want: []map[string]string{
				{"date": "2024-01-01", "cost": "1200.5", "clicks": "30", "memo": "", "active": "true"},
				{"date": "2024-01-02", "cost": "900"},
			},
		},
		{
			name: "Tabela vazia - lista vazia",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT record").WillReturnRows(sqlmock.NewRows([]string{"record"}))
			},
			want: []map[string]string{},
		},
		{
			name: "Erro no banco",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT record").WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "JSON inválido",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT record").
					WillReturnRows(sqlmock.NewRows([]string{"record"}).AddRow([]byte(`{invalid`)))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRawRecordRepository(t)
			tt.setup(mock)

			records, err := repo.List(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, records)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRawRecordRepository_Replace(t *testing.T) {
	records := []map[string]string{
		{"date": "2024-01-01", "cost": "100"},
		{"date": "2024-01-02", "cost": "200"},
	}

	t.Run("Sucesso - limpa e insere na mesma transação", func(t *testing.T) {
		repo, mock := newRawRecordRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ad_report_records"`)).
			WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "ad_report_records" (record,imported_at) VALUES ($1,$2),($3,$4)`)).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		inserted, err := repo.Replace(context.Background(), records)
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Falha na inserção - desfaz a transação", func(t *testing.T) {
		repo, mock := newRawRecordRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		inserted, err := repo.Replace(context.Background(), records)
		assert.Error(t, err)
		assert.Zero(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

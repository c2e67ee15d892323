package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction(t *testing.T) {
	errInsert := errors.New("falha no insert")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		fn      func(tx *sql.Tx) error
		wantErr error
	}{
		{
			name: "Confirma quando a função termina sem erro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM ad_report_records").WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
			},
			fn: func(tx *sql.Tx) error {
				_, err := tx.Exec("DELETE FROM ad_report_records")
				return err
			},
		},
		{
			name: "Desfaz e devolve o erro da função",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:      func(*sql.Tx) error { return errInsert },
			wantErr: errInsert,
		},
		{
			name: "Erro no rollback mantém o erro original na cadeia",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(sql.ErrTxDone)
			},
			fn:      func(*sql.Tx) error { return errInsert },
			wantErr: errInsert,
		},
		{
			name: "Erro no commit é devolvido",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(sql.ErrConnDone)
			},
			fn:      func(*sql.Tx) error { return nil },
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setup(mock)

			conn := &Connection{DB: db}
			err = conn.RunInTransaction(context.Background(), tt.fn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTransactionPanic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	conn := &Connection{DB: db}
	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(*sql.Tx) error {
			panic("linha inválida")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Connection{DB: db}, mock
}

func TestConnection_WithTx(t *testing.T) {
	t.Run("commit quando fn não falha", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectBegin()
		mock.ExpectExec("CREATE INDEX").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := conn.WithTx(context.Background(), func(tx Queryer) error {
			_, err := tx.ExecContext(context.Background(), "CREATE INDEX report_history_created_at_idx")
			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback devolve o erro de fn", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		fnErr := errors.New("falhou")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := conn.WithTx(context.Background(), func(tx Queryer) error {
			return fnErr
		})

		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback em panic", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = conn.WithTx(context.Background(), func(tx Queryer) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package database_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"maquete-admin-backend/internal/database"
	"maquete-admin-backend/internal/models"
)

func mockStore(t *testing.T) (*database.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewFromDB(db, zap.NewNop()), mock
}

func fieldsFrom(t *testing.T, body string) *models.MaqueteFields {
	t.Helper()
	var p models.MaquetePayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	f, err := p.Normalize()
	require.NoError(t, err)
	return f
}

// An update that omits info must bind NULL for it, so the COALESCE in
// the fixed SET clause keeps the stored text while the supplied field
// is replaced.
func TestUpdateMaquete_OmittedInfoBindsNull(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectExec("UPDATE maquetes SET").
		WithArgs(
			int64(7),
			nil, "1:87", nil, nil, nil, nil, nil,
			nil, nil, nil, nil, nil,
			nil, // info absent: keep stored value
			nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateMaquete(7, fieldsFrom(t, `{"escala":"1:87"}`))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// info present but empty binds '' and overwrites; every other column
// binds NULL and is kept.
func TestUpdateMaquete_PresentEmptyInfoOverwrites(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectExec("UPDATE maquetes SET").
		WithArgs(
			int64(7),
			nil, nil, nil, nil, nil, nil, nil,
			nil, nil, nil, nil, nil,
			"", // info present and empty: clear the stored text
			nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateMaquete(7, fieldsFrom(t, `{"info":""}`))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMaquete_NoRowMatched(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectExec("UPDATE maquetes SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateMaquete(999, fieldsFrom(t, `{"nome":"Estação Central"}`))
	assert.True(t, errors.Is(err, database.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMaquete_IdempotentOnMissingRow(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectExec("DELETE FROM maquetes WHERE id").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, store.DeleteMaquete(999))
	assert.NoError(t, mock.ExpectationsWereMet())
}

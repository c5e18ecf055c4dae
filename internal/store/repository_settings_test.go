package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_Get(t *testing.T) {
	db, mock := newMockDB(t, nil)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT value FROM settings WHERE key = \$1`).
		WithArgs(models.SettingSelectedCharacter).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("700000001"))

	got, err := repo.Get(context.Background(), models.SettingSelectedCharacter)
	require.NoError(t, err)
	assert.Equal(t, "700000001", got)
}

func TestSettingsRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t, nil)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingsRepository_Get_DBError(t *testing.T) {
	db, mock := newMockDB(t, nil)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM settings").WillReturnError(errors.New("boom"))

	_, err := repo.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSettingsRepository_Set(t *testing.T) {
	db, mock := newMockDB(t, nil)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectExec(`INSERT INTO settings \(key,value\) VALUES \(\$1,\$2\) ON CONFLICT \(key\) DO UPDATE SET value = excluded.value`).
		WithArgs("k", "v").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(context.Background(), "k", "v"))
}

func TestSettingsRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t, nil)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM settings WHERE key = \$1`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "k"))
}

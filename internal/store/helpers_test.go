package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
)

func newMockDB(t *testing.T, classifier ErrorClassificator) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = conn.Close()
	})

	return &DB{DB: conn, dialect: DialectSQLite, errorClassificator: classifier, logger: logger.Nop()}, mock
}


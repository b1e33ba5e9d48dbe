// Package dbtest puts gorm on top of go-sqlmock for query-level tests.
package dbtest

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pasacalle/config"
	"pasacalle/database"
)

// New returns a gorm handle backed by sqlmock. Expectations left unmet
// fail the test at cleanup.
func New(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock database: %v", err)
	}

	nop := zerolog.Nop()
	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})
	db, err := database.OpenDialector(dialector, &config.Default().Database, &nop)
	if err != nil {
		t.Fatalf("failed to open gorm on mock database: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
		sqlDB.Close()
	})
	return db, mock
}

package audit

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestService_NoDatabase(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.Migrate())

	// No-op without panicking.
	svc.Record(context.Background(), SyncRecord{StoreID: "af-milano"})

	records, err := svc.Recent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Nil(t, records)
}

func TestService_Record(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_records`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	svc.Record(context.Background(), SyncRecord{
		StoreID:  "af-milano",
		Filename: "stock.xlsx",
		Mode:     "adjust",
		Status:   "completed",
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Recent(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "store_id", "status"}).
		AddRow(2, "af-milano", "completed").
		AddRow(1, "af-milano", "validation_failed")
	mock.ExpectQuery("SELECT \\* FROM `sync_records`").WillReturnRows(rows)

	records, err := svc.Recent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint(2), records[0].ID)
	assert.Equal(t, "completed", records[0].Status)
}

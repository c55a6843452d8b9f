package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"openfare/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.OperatorModel{},
		&models.TicketModel{},
		&models.RefundModel{},
		&models.ComplaintModel{},
		&models.MessageModel{},
		&models.SLAConfigModel{},
		&models.TrustScoreLogModel{},
		&models.AuditLogModel{},
	)
	require.NoError(t, err)

	return db
}

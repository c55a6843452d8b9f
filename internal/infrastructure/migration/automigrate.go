package migration

import (
	"openfare/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.OperatorModel{},
		&models.TicketModel{},
		&models.RefundModel{},
		&models.ComplaintModel{},
		&models.MessageModel{},
		&models.SLAConfigModel{},
		&models.TrustScoreLogModel{},
		&models.AuditLogModel{},
	}
}

package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"openfare/internal/domain/sla"
	"openfare/internal/infrastructure/persistence/models"
	"openfare/internal/shared/config"
)

// EnsureSLAConfigs creates the per-type SLA threshold rows from application
// config when they are missing. Existing rows win; config values only apply
// to a fresh database.
func EnsureSLAConfigs(db *gorm.DB, cfg *config.SLAConfig) error {
	defaults := []models.SLAConfigModel{
		{
			Type:           string(sla.SLATypeRefundTimeout),
			ThresholdHours: float64(cfg.RefundTimeoutHours),
			Penalty:        cfg.RefundPenalty,
		},
		{
			Type:           string(sla.SLATypeComplaintResponse),
			ThresholdHours: float64(cfg.ComplaintResponseHours),
			Penalty:        cfg.ComplaintPenalty,
		},
	}

	for _, model := range defaults {
		if err := db.Where(models.SLAConfigModel{Type: model.Type}).
			FirstOrCreate(&model).Error; err != nil {
			return fmt.Errorf("failed to ensure SLA config %s: %w", model.Type, err)
		}
	}
	return nil
}

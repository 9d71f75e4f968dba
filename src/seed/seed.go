package seed

import (
	"github.com/ACORDE/memorial-acervo/src/config"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/ACORDE/memorial-acervo/src/services"
	"gorm.io/gorm"
)

// DefaultEventTypes are created on first start when missing.
var DefaultEventTypes = []string{
	"Aquisição",
	"Doação",
	"Empréstimo",
	"Exposição",
	"Restauração",
	"Transferência",
}

// Seed is safe to run on every start.
func Seed(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	// Administrator
	if cfg.AdminPassword == "" {
		log.Info("ADMIN_PASSWORD not set, skipping administrator", "username", cfg.AdminUsername)
	} else {
		users := services.NewUserService(db, cfg.JWTSecret, cfg.TokenTTL)
		_, created, err := users.EnsureSuperuser(cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return err
		}
		if created {
			log.Info("administrator created", "username", cfg.AdminUsername)
		} else {
			log.Info("administrator updated", "username", cfg.AdminUsername)
		}
	}

	// Event types
	createdCount := 0
	for _, description := range DefaultEventTypes {
		var count int64
		if err := db.Model(&models.EventTypeModel{}).Where("description = ?", description).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.EventTypeModel{Description: description}).Error; err != nil {
			return err
		}
		createdCount++
	}
	if createdCount > 0 {
		log.Info("event types created", "count", createdCount)
	}

	// System configuration row
	if _, err := services.NewSystemConfigService(db).GetConfig(); err != nil {
		return err
	}
	return nil
}

package services

import (
	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SystemConfigService owns the single configuration row.
type SystemConfigService struct {
	db *gorm.DB
}

func NewSystemConfigService(db *gorm.DB) *SystemConfigService {
	return &SystemConfigService{db: db}
}

// GetConfig returns the configuration row, creating it on first use.
func (s *SystemConfigService) GetConfig() (*models.SystemConfigModel, error) {
	cfg := models.SystemConfigModel{ID: models.SystemConfigID}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cfg).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&cfg, models.SystemConfigID).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateConfig stores a new captioning key. A blank key clears it.
func (s *SystemConfigService) UpdateConfig(input dtos.SystemConfigInput) (*models.SystemConfigModel, error) {
	input.Normalize()
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(cfg).Update("open_ai_key", input.OpenAIKey).Error; err != nil {
		return nil, err
	}
	cfg.OpenAIKey = input.OpenAIKey
	return cfg, nil
}

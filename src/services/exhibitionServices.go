package services

import (
	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/gorm"
)

const exhibitionEntity = "Exposição"

type ExhibitionService struct {
	db *gorm.DB
}

func NewExhibitionService(db *gorm.DB) *ExhibitionService {
	return &ExhibitionService{db: db}
}

// GetAllExhibitions lists exhibitions, most recent start first
func (s *ExhibitionService) GetAllExhibitions() ([]models.ExhibitionModel, error) {
	var exhibitions []models.ExhibitionModel
	if err := s.db.Order("start_date DESC").Order("id DESC").Find(&exhibitions).Error; err != nil {
		return nil, err
	}
	return exhibitions, nil
}

func (s *ExhibitionService) GetExhibitionByID(id int) (*models.ExhibitionModel, error) {
	var exhibition models.ExhibitionModel
	if err := s.db.First(&exhibition, id).Error; err != nil {
		return nil, notFound(err, exhibitionEntity)
	}
	return &exhibition, nil
}

func (s *ExhibitionService) CreateExhibition(input dtos.ExhibitionInput) (*models.ExhibitionModel, error) {
	if err := input.Validate().Bind(forms.ExhibitionForm, &input); err != nil {
		return nil, err
	}
	exhibition := input.ToModel()
	if err := s.db.Create(&exhibition).Error; err != nil {
		return nil, err
	}
	return &exhibition, nil
}

func (s *ExhibitionService) UpdateExhibition(id int, input dtos.ExhibitionInput) (*models.ExhibitionModel, error) {
	if _, err := s.GetExhibitionByID(id); err != nil {
		return nil, err
	}
	if err := input.Validate().Bind(forms.ExhibitionForm, &input); err != nil {
		return nil, err
	}
	exhibition := input.ToModel()
	exhibition.ID = id
	if err := s.db.Save(&exhibition).Error; err != nil {
		return nil, err
	}
	return &exhibition, nil
}

// DeleteExhibition removes an exhibition; its pieces stay without one.
func (s *ExhibitionService) DeleteExhibition(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var exhibition models.ExhibitionModel
		if err := tx.First(&exhibition, id).Error; err != nil {
			return notFound(err, exhibitionEntity)
		}
		if err := tx.Model(&models.CollectionPieceModel{}).Where("exhibition_id = ?", id).Update("exhibition_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&exhibition).Error
	})
}

func (s *ExhibitionService) GetDeleteConfirmation(id int) (*dtos.DeleteConfirmationDTO, error) {
	exhibition, err := s.GetExhibitionByID(id)
	if err != nil {
		return nil, err
	}
	var pieces int64
	if err := s.db.Model(&models.CollectionPieceModel{}).Where("exhibition_id = ?", id).Count(&pieces).Error; err != nil {
		return nil, err
	}
	return &dtos.DeleteConfirmationDTO{ID: exhibition.ID, Label: exhibition.Title(), Detach: map[string]int{"pecas": int(pieces)}}, nil
}

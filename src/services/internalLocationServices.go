package services

import (
	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/gorm"
)

const locationEntity = "Local interno"

type InternalLocationService struct {
	db *gorm.DB
}

func NewInternalLocationService(db *gorm.DB) *InternalLocationService {
	return &InternalLocationService{db: db}
}

func (s *InternalLocationService) GetAllLocations() ([]models.InternalLocationModel, error) {
	var locations []models.InternalLocationModel
	if err := s.db.Order("label").Order("id").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *InternalLocationService) GetLocationByID(id int) (*models.InternalLocationModel, error) {
	var location models.InternalLocationModel
	if err := s.db.First(&location, id).Error; err != nil {
		return nil, notFound(err, locationEntity)
	}
	return &location, nil
}

func (s *InternalLocationService) CreateLocation(input dtos.LabelInput) (*models.InternalLocationModel, error) {
	if err := input.Validate().Bind(forms.InternalLocationForm, &input); err != nil {
		return nil, err
	}
	location := models.InternalLocationModel{Label: input.Label}
	if err := s.db.Create(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *InternalLocationService) UpdateLocation(id int, input dtos.LabelInput) (*models.InternalLocationModel, error) {
	location, err := s.GetLocationByID(id)
	if err != nil {
		return nil, err
	}
	if err := input.Validate().Bind(forms.InternalLocationForm, &input); err != nil {
		return nil, err
	}
	if err := s.db.Model(location).Update("label", input.Label).Error; err != nil {
		return nil, err
	}
	location.Label = input.Label
	return location, nil
}

// DeleteLocation removes a location; pieces stored there lose the reference.
func (s *InternalLocationService) DeleteLocation(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var location models.InternalLocationModel
		if err := tx.First(&location, id).Error; err != nil {
			return notFound(err, locationEntity)
		}
		if err := tx.Model(&models.CollectionPieceModel{}).Where("internal_location_id = ?", id).Update("internal_location_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&location).Error
	})
}

func (s *InternalLocationService) GetDeleteConfirmation(id int) (*dtos.DeleteConfirmationDTO, error) {
	location, err := s.GetLocationByID(id)
	if err != nil {
		return nil, err
	}
	var pieces int64
	if err := s.db.Model(&models.CollectionPieceModel{}).Where("internal_location_id = ?", id).Count(&pieces).Error; err != nil {
		return nil, err
	}
	return &dtos.DeleteConfirmationDTO{ID: location.ID, Label: location.Label, Detach: map[string]int{"pecas": int(pieces)}}, nil
}

package services

import (
	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/gorm"
)

const axisEntity = "Eixo organizador"

type OrganizingAxisService struct {
	db *gorm.DB
}

func NewOrganizingAxisService(db *gorm.DB) *OrganizingAxisService {
	return &OrganizingAxisService{db: db}
}

func (s *OrganizingAxisService) GetAllAxes() ([]models.OrganizingAxisModel, error) {
	var axes []models.OrganizingAxisModel
	if err := s.db.Order("label").Order("id").Find(&axes).Error; err != nil {
		return nil, err
	}
	return axes, nil
}

func (s *OrganizingAxisService) GetAxisByID(id int) (*models.OrganizingAxisModel, error) {
	var axis models.OrganizingAxisModel
	if err := s.db.First(&axis, id).Error; err != nil {
		return nil, notFound(err, axisEntity)
	}
	return &axis, nil
}

func (s *OrganizingAxisService) CreateAxis(input dtos.LabelInput) (*models.OrganizingAxisModel, error) {
	if err := input.Validate().Bind(forms.AxisForm, &input); err != nil {
		return nil, err
	}
	axis := models.OrganizingAxisModel{Label: input.Label}
	if err := s.db.Create(&axis).Error; err != nil {
		return nil, err
	}
	return &axis, nil
}

func (s *OrganizingAxisService) UpdateAxis(id int, input dtos.LabelInput) (*models.OrganizingAxisModel, error) {
	axis, err := s.GetAxisByID(id)
	if err != nil {
		return nil, err
	}
	if err := input.Validate().Bind(forms.AxisForm, &input); err != nil {
		return nil, err
	}
	if err := s.db.Model(axis).Update("label", input.Label).Error; err != nil {
		return nil, err
	}
	axis.Label = input.Label
	return axis, nil
}

// DeleteAxis removes an axis; pieces grouped under it lose their axis.
func (s *OrganizingAxisService) DeleteAxis(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var axis models.OrganizingAxisModel
		if err := tx.First(&axis, id).Error; err != nil {
			return notFound(err, axisEntity)
		}
		if err := tx.Model(&models.CollectionPieceModel{}).Where("organizing_axis_id = ?", id).Update("organizing_axis_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&axis).Error
	})
}

func (s *OrganizingAxisService) GetDeleteConfirmation(id int) (*dtos.DeleteConfirmationDTO, error) {
	axis, err := s.GetAxisByID(id)
	if err != nil {
		return nil, err
	}
	var pieces int64
	if err := s.db.Model(&models.CollectionPieceModel{}).Where("organizing_axis_id = ?", id).Count(&pieces).Error; err != nil {
		return nil, err
	}
	return &dtos.DeleteConfirmationDTO{ID: axis.ID, Label: axis.Label, Detach: map[string]int{"pecas": int(pieces)}}, nil
}

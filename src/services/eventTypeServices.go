package services

import (
	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/gorm"
)

const eventTypeEntity = "Tipo de evento"

type EventTypeService struct {
	db *gorm.DB
}

func NewEventTypeService(db *gorm.DB) *EventTypeService {
	return &EventTypeService{db: db}
}

func (s *EventTypeService) GetAllEventTypes() ([]models.EventTypeModel, error) {
	var types []models.EventTypeModel
	if err := s.db.Order("description").Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (s *EventTypeService) GetEventTypeByID(id int) (*models.EventTypeModel, error) {
	var eventType models.EventTypeModel
	if err := s.db.First(&eventType, id).Error; err != nil {
		return nil, notFound(err, eventTypeEntity)
	}
	return &eventType, nil
}

func (s *EventTypeService) CreateEventType(input dtos.EventTypeInput) (*models.EventTypeModel, error) {
	if err := input.Validate().Bind(forms.EventTypeForm, &input); err != nil {
		return nil, err
	}
	eventType := models.EventTypeModel{Description: input.Description}
	if err := s.db.Create(&eventType).Error; err != nil {
		return nil, err
	}
	return &eventType, nil
}

func (s *EventTypeService) UpdateEventType(id int, input dtos.EventTypeInput) (*models.EventTypeModel, error) {
	eventType, err := s.GetEventTypeByID(id)
	if err != nil {
		return nil, err
	}
	if err := input.Validate().Bind(forms.EventTypeForm, &input); err != nil {
		return nil, err
	}
	if err := s.db.Model(eventType).Update("description", input.Description).Error; err != nil {
		return nil, err
	}
	eventType.Description = input.Description
	return eventType, nil
}

// DeleteEventType removes the type together with every history event using it.
func (s *EventTypeService) DeleteEventType(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var eventType models.EventTypeModel
		if err := tx.First(&eventType, id).Error; err != nil {
			return notFound(err, eventTypeEntity)
		}
		if err := tx.Where("event_type_id = ?", id).Delete(&models.HistoryEventModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&eventType).Error
	})
}

func (s *EventTypeService) GetDeleteConfirmation(id int) (*dtos.DeleteConfirmationDTO, error) {
	eventType, err := s.GetEventTypeByID(id)
	if err != nil {
		return nil, err
	}
	var history int64
	if err := s.db.Model(&models.HistoryEventModel{}).Where("event_type_id = ?", id).Count(&history).Error; err != nil {
		return nil, err
	}
	return &dtos.DeleteConfirmationDTO{ID: eventType.ID, Label: eventType.Description, Cascade: map[string]int{"historicos": int(history)}}, nil
}

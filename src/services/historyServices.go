package services

import (
	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/gorm"
)

const historyEntity = "Histórico"

type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// GetHistoryByPiece lists a piece's events, latest start first
func (s *HistoryService) GetHistoryByPiece(pieceID int) ([]models.HistoryEventModel, error) {
	if err := s.requirePiece(pieceID); err != nil {
		return nil, err
	}
	var events []models.HistoryEventModel
	err := s.db.Preload("EventType").Preload("Responsible").
		Where("piece_id = ?", pieceID).
		Order("start_date DESC").Order("id DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetHistoryEvent returns an event only when it belongs to the piece
func (s *HistoryService) GetHistoryEvent(pieceID, id int) (*models.HistoryEventModel, error) {
	if err := s.requirePiece(pieceID); err != nil {
		return nil, err
	}
	var event models.HistoryEventModel
	err := s.db.Preload("EventType").Preload("Responsible").
		Where("piece_id = ?", pieceID).
		First(&event, id).Error
	if err != nil {
		return nil, notFound(err, historyEntity)
	}
	return &event, nil
}

func (s *HistoryService) CreateHistoryEvent(pieceID int, input dtos.HistoryInput) (*models.HistoryEventModel, error) {
	if err := s.requirePiece(pieceID); err != nil {
		return nil, err
	}
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	event := input.ToModel(pieceID)
	if err := s.db.Omit("EventType", "Responsible").Create(&event).Error; err != nil {
		return nil, err
	}
	return s.GetHistoryEvent(pieceID, event.ID)
}

func (s *HistoryService) UpdateHistoryEvent(pieceID, id int, input dtos.HistoryInput) (*models.HistoryEventModel, error) {
	if _, err := s.GetHistoryEvent(pieceID, id); err != nil {
		return nil, err
	}
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	event := input.ToModel(pieceID)
	event.ID = id
	if err := s.db.Omit("EventType", "Responsible").Save(&event).Error; err != nil {
		return nil, err
	}
	return s.GetHistoryEvent(pieceID, id)
}

func (s *HistoryService) DeleteHistoryEvent(pieceID, id int) error {
	event, err := s.GetHistoryEvent(pieceID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(&models.HistoryEventModel{}, event.ID).Error
}

func (s *HistoryService) GetDeleteConfirmation(pieceID, id int) (*dtos.DeleteConfirmationDTO, error) {
	event, err := s.GetHistoryEvent(pieceID, id)
	if err != nil {
		return nil, err
	}
	label := event.StartDate.Display() + " a " + event.EndDate.Display()
	if event.EventType != nil {
		label = event.EventType.Description + " - De " + label
	}
	return &dtos.DeleteConfirmationDTO{ID: event.ID, Label: label}, nil
}

func (s *HistoryService) validate(input *dtos.HistoryInput) error {
	errs := input.Validate(models.Today())
	if input.EventTypeID > 0 {
		ok, err := exists(s.db, &models.EventTypeModel{}, input.EventTypeID)
		if err != nil {
			return err
		}
		if !ok {
			errs.Add("eventTypeId", msgInvalidChoice)
		}
	}
	if input.ResponsibleID != nil {
		ok, err := exists(s.db, &models.PersonModel{}, *input.ResponsibleID)
		if err != nil {
			return err
		}
		if !ok {
			errs.Add("responsibleId", msgInvalidChoice)
		}
	}
	return errs.Bind(forms.HistoryForm, input)
}

func (s *HistoryService) requirePiece(pieceID int) error {
	ok, err := exists(s.db, &models.CollectionPieceModel{}, pieceID)
	if err != nil {
		return err
	}
	if !ok {
		return &ErrNotFound{Entity: pieceEntity}
	}
	return nil
}

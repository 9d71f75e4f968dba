package services

import (
	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/gorm"
)

const personEntity = "Pessoa"

type PersonService struct {
	db *gorm.DB
}

// NewPersonService creates a new instance of PersonService
func NewPersonService(db *gorm.DB) *PersonService {
	return &PersonService{db: db}
}

// GetAllPersons retrieves every person ordered by name
func (s *PersonService) GetAllPersons() ([]models.PersonModel, error) {
	var persons []models.PersonModel
	if err := s.db.Order("name").Order("id").Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

// GetPersonByID retrieves a person by ID
func (s *PersonService) GetPersonByID(id int) (*models.PersonModel, error) {
	var person models.PersonModel
	if err := s.db.First(&person, id).Error; err != nil {
		return nil, notFound(err, personEntity)
	}
	return &person, nil
}

// CreatePerson validates the input and stores a new person
func (s *PersonService) CreatePerson(input dtos.PersonInput) (*models.PersonModel, error) {
	if err := input.Validate(models.Today()).Bind(forms.PersonForm, &input); err != nil {
		return nil, err
	}
	person := input.ToModel()
	if err := s.db.Create(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// UpdatePerson replaces every field of an existing person
func (s *PersonService) UpdatePerson(id int, input dtos.PersonInput) (*models.PersonModel, error) {
	if _, err := s.GetPersonByID(id); err != nil {
		return nil, err
	}
	if err := input.Validate(models.Today()).Bind(forms.PersonForm, &input); err != nil {
		return nil, err
	}
	person := input.ToModel()
	person.ID = id
	if err := s.db.Save(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// DeletePerson removes a person, its authorship links and its
// responsibility on history events.
func (s *PersonService) DeletePerson(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var person models.PersonModel
		if err := tx.First(&person, id).Error; err != nil {
			return notFound(err, personEntity)
		}
		if err := tx.Exec("DELETE FROM collection_piece_authors WHERE person_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.HistoryEventModel{}).Where("responsible_id = ?", id).Update("responsible_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&person).Error
	})
}

// GetDeleteConfirmation reports what deleting a person detaches
func (s *PersonService) GetDeleteConfirmation(id int) (*dtos.DeleteConfirmationDTO, error) {
	person, err := s.GetPersonByID(id)
	if err != nil {
		return nil, err
	}
	var pieces, history int64
	if err := s.db.Table("collection_piece_authors").Where("person_id = ?", id).Count(&pieces).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.HistoryEventModel{}).Where("responsible_id = ?", id).Count(&history).Error; err != nil {
		return nil, err
	}
	return &dtos.DeleteConfirmationDTO{
		ID:     person.ID,
		Label:  person.Name,
		Detach: map[string]int{"pecas": int(pieces), "historicos": int(history)},
	}, nil
}

package services

import (
	"fmt"
	"strconv"

	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/gorm"
)

// ErrUnknownForm is returned by Schema for a name that has no definition.
type ErrUnknownForm struct {
	Name string
}

func (e *ErrUnknownForm) Error() string {
	return fmt.Sprintf("formulário %s não existe", e.Name)
}

// FormService renders form schemas, filling select choices from the database.
type FormService struct {
	db *gorm.DB
}

func NewFormService(db *gorm.DB) *FormService {
	return &FormService{db: db}
}

// Schema builds the named form, bound to values and errs when given.
func (s *FormService) Schema(name string, errs *forms.Errors, values map[string]interface{}) (*forms.Form, error) {
	def, ok := forms.Lookup(name)
	if !ok {
		return nil, &ErrUnknownForm{Name: name}
	}

	switch name {
	case forms.PieceForm:
		persons, err := s.personChoices()
		if err != nil {
			return nil, err
		}
		axes, err := s.labelChoices(&models.OrganizingAxisModel{})
		if err != nil {
			return nil, err
		}
		exhibitions, err := s.exhibitionChoices()
		if err != nil {
			return nil, err
		}
		locations, err := s.labelChoices(&models.InternalLocationModel{})
		if err != nil {
			return nil, err
		}
		def = def.WithChoices("authorIds", persons).
			WithChoices("organizingAxisId", axes).
			WithChoices("exhibitionId", exhibitions).
			WithChoices("internalLocationId", locations)
	case forms.HistoryForm:
		types, err := s.eventTypeChoices()
		if err != nil {
			return nil, err
		}
		persons, err := s.personChoices()
		if err != nil {
			return nil, err
		}
		def = def.WithChoices("eventTypeId", types).WithChoices("responsibleId", persons)
	}

	form := forms.Build(def, errs, values)
	return &form, nil
}

func (s *FormService) personChoices() ([]models.Choice, error) {
	var persons []models.PersonModel
	if err := s.db.Order("name").Order("id").Find(&persons).Error; err != nil {
		return nil, err
	}
	choices := make([]models.Choice, 0, len(persons))
	for _, p := range persons {
		choices = append(choices, models.Choice{Value: strconv.Itoa(p.ID), Label: p.Name})
	}
	return choices, nil
}

// labelChoices lists axis or location rows ordered by label.
func (s *FormService) labelChoices(model interface{}) ([]models.Choice, error) {
	var rows []struct {
		ID    int
		Label string
	}
	if err := s.db.Model(model).Select("id", "label").Order("label").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	choices := make([]models.Choice, 0, len(rows))
	for _, r := range rows {
		choices = append(choices, models.Choice{Value: strconv.Itoa(r.ID), Label: r.Label})
	}
	return choices, nil
}

func (s *FormService) exhibitionChoices() ([]models.Choice, error) {
	var exhibitions []models.ExhibitionModel
	if err := s.db.Order("start_date DESC").Order("id DESC").Find(&exhibitions).Error; err != nil {
		return nil, err
	}
	choices := make([]models.Choice, 0, len(exhibitions))
	for _, e := range exhibitions {
		choices = append(choices, models.Choice{Value: strconv.Itoa(e.ID), Label: e.Title()})
	}
	return choices, nil
}

func (s *FormService) eventTypeChoices() ([]models.Choice, error) {
	var types []models.EventTypeModel
	if err := s.db.Order("description").Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	choices := make([]models.Choice, 0, len(types))
	for _, t := range types {
		choices = append(choices, models.Choice{Value: strconv.Itoa(t.ID), Label: t.Description})
	}
	return choices, nil
}

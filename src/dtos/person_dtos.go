package dtos

import (
	"strings"

	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
)

// PersonInput is the payload for a person. Both flags default to true.
type PersonInput struct {
	Name          string       `json:"name"`
	Phones        *string      `json:"phones"`
	Email         *string      `json:"email"`
	Birthplace    *string      `json:"birthplace"`
	Nationality   *string      `json:"nationality"`
	BirthDate     *models.Date `json:"birthDate"`
	Biography     *string      `json:"biography"`
	NaturalPerson *bool        `json:"naturalPerson"`
	IsAuthor      *bool        `json:"isAuthor"`
}

func (in *PersonInput) Validate(today models.Date) *forms.Errors {
	in.Name = strings.TrimSpace(in.Name)
	in.Phones = optional(in.Phones)
	in.Email = optional(in.Email)
	in.Birthplace = optional(in.Birthplace)
	in.Nationality = optional(in.Nationality)
	in.Biography = optional(in.Biography)
	in.BirthDate = optionalDate(in.BirthDate)

	errs := forms.NewErrors()
	if errs.Required("name", in.Name) {
		errs.MaxLength("name", in.Name, 100)
	}
	errs.MaxLength("phones", deref(in.Phones), 40)
	errs.MaxLength("email", deref(in.Email), 100)
	errs.Email("email", deref(in.Email))
	errs.MaxLength("birthplace", deref(in.Birthplace), 40)
	errs.MaxLength("nationality", deref(in.Nationality), 20)
	errs.ValidDate("birthDate", in.BirthDate)
	errs.NotAfter("birthDate", in.BirthDate, today)
	errs.Required("biography", deref(in.Biography))
	return errs
}

func (in PersonInput) ToModel() models.PersonModel {
	return models.PersonModel{
		Name:          in.Name,
		Phones:        in.Phones,
		Email:         in.Email,
		Birthplace:    in.Birthplace,
		Nationality:   in.Nationality,
		BirthDate:     in.BirthDate,
		Biography:     in.Biography,
		NaturalPerson: boolOr(in.NaturalPerson, true),
		IsAuthor:      boolOr(in.IsAuthor, true),
	}
}

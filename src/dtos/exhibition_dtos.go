package dtos

import (
	"strings"

	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
)

// ExhibitionInput is the payload for an exhibition. Physical defaults to true.
type ExhibitionInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   models.Date `json:"startDate"`
	EndDate     models.Date `json:"endDate"`
	Location    string      `json:"location"`
	Organizer   string      `json:"organizer"`
	Physical    *bool       `json:"physical"`
}

const MsgExhibitionDates = "A data de encerramento não pode ser anterior à data de início."

func (in *ExhibitionInput) Validate() *forms.Errors {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Organizer = strings.TrimSpace(in.Organizer)

	errs := forms.NewErrors()
	if errs.Required("name", in.Name) {
		errs.MaxLength("name", in.Name, 200)
	}
	errs.Required("description", in.Description)
	if errs.ValidDate("startDate", &in.StartDate) && in.StartDate.IsZero() {
		errs.Add("startDate", forms.MsgRequired)
	}
	if errs.ValidDate("endDate", &in.EndDate) && in.EndDate.IsZero() {
		errs.Add("endDate", forms.MsgRequired)
	}
	if errs.Required("location", in.Location) {
		errs.MaxLength("location", in.Location, 255)
	}
	if errs.Required("organizer", in.Organizer) {
		errs.MaxLength("organizer", in.Organizer, 200)
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		errs.AddNonField(MsgExhibitionDates)
	}
	return errs
}

func (in ExhibitionInput) ToModel() models.ExhibitionModel {
	return models.ExhibitionModel{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Location:    in.Location,
		Organizer:   in.Organizer,
		Physical:    boolOr(in.Physical, true),
	}
}

// ExhibitionDTO adds the display title to the stored exhibition.
type ExhibitionDTO struct {
	models.ExhibitionModel
	Title string `json:"title"`
}

func NewExhibitionDTO(e models.ExhibitionModel) ExhibitionDTO {
	return ExhibitionDTO{ExhibitionModel: e, Title: e.Title()}
}

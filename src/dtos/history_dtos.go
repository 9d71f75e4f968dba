package dtos

import (
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
)

// HistoryInput is the payload of a history event. Missing dates default to today.
type HistoryInput struct {
	EventTypeID   int          `json:"eventTypeId"`
	ResponsibleID *int         `json:"responsibleId"`
	Description   *string      `json:"description"`
	StartDate     *models.Date `json:"startDate"`
	EndDate       *models.Date `json:"endDate"`
}

const MsgHistoryDates = "A data final não pode ser anterior à data de início."

func (in *HistoryInput) Validate(today models.Date) *forms.Errors {
	in.Description = optional(in.Description)
	in.ResponsibleID = optionalID(in.ResponsibleID)
	if optionalDate(in.StartDate) == nil {
		d := today
		in.StartDate = &d
	}
	if optionalDate(in.EndDate) == nil {
		d := today
		in.EndDate = &d
	}

	errs := forms.NewErrors()
	if in.EventTypeID <= 0 {
		errs.Add("eventTypeId", forms.MsgRequired)
	}
	startOK := errs.ValidDate("startDate", in.StartDate)
	endOK := errs.ValidDate("endDate", in.EndDate)
	if startOK && endOK && in.EndDate.Before(*in.StartDate) {
		errs.AddNonField(MsgHistoryDates)
	}
	return errs
}

func (in HistoryInput) ToModel(pieceID int) models.HistoryEventModel {
	return models.HistoryEventModel{
		PieceID:       pieceID,
		EventTypeID:   in.EventTypeID,
		ResponsibleID: in.ResponsibleID,
		Description:   in.Description,
		StartDate:     *in.StartDate,
		EndDate:       *in.EndDate,
	}
}

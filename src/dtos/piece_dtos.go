package dtos

import (
	"strings"

	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
)

// PieceInput is the payload used to create or update a collection piece.
type PieceInput struct {
	Denomination           string       `json:"denomination"`
	AuthorIDs              []int        `json:"authorIds"`
	TitleByAuthor          string       `json:"titleByAuthor"`
	RegistryNumber         *string      `json:"registryNumber"`
	OrderNumber            *string      `json:"orderNumber"`
	Status                 string       `json:"status"`
	Thesaurus              *string      `json:"thesaurus"`
	Description            string       `json:"description"`
	Dimensions             *string      `json:"dimensions"`
	MaterialTechnique      string       `json:"materialTechnique"`
	ConservationState      string       `json:"conservationState"`
	ProductionPlace        string       `json:"productionPlace"`
	ProductionStartDate    *models.Date `json:"productionStartDate"`
	ProductionEndDate      *models.Date `json:"productionEndDate"`
	CanReproduce           bool         `json:"canReproduce"`
	ReproductionConditions *string      `json:"reproductionConditions"`
	Typology               string       `json:"typology"`
	AcquisitionMethod      string       `json:"acquisitionMethod"`
	OrganizingAxisID       *int         `json:"organizingAxisId"`
	ExhibitionID           *int         `json:"exhibitionId"`
	InternalLocationID     *int         `json:"internalLocationId"`
	Published              bool         `json:"published"`
}

// Normalize trims text, fills defaults and clears blank optional values.
func (in *PieceInput) Normalize() {
	in.Denomination = strings.TrimSpace(in.Denomination)
	in.TitleByAuthor = strings.TrimSpace(in.TitleByAuthor)
	in.Description = strings.TrimSpace(in.Description)
	in.MaterialTechnique = strings.TrimSpace(in.MaterialTechnique)
	in.ProductionPlace = strings.TrimSpace(in.ProductionPlace)
	in.RegistryNumber = optional(in.RegistryNumber)
	in.OrderNumber = optional(in.OrderNumber)
	in.Thesaurus = optional(in.Thesaurus)
	in.Dimensions = optional(in.Dimensions)
	in.ReproductionConditions = optional(in.ReproductionConditions)
	in.ProductionStartDate = optionalDate(in.ProductionStartDate)
	in.ProductionEndDate = optionalDate(in.ProductionEndDate)
	in.OrganizingAxisID = optionalID(in.OrganizingAxisID)
	in.ExhibitionID = optionalID(in.ExhibitionID)
	in.InternalLocationID = optionalID(in.InternalLocationID)
	if strings.TrimSpace(in.Status) == "" {
		in.Status = string(models.StatusLocated)
	}
	if strings.TrimSpace(in.Typology) == "" {
		in.Typology = string(models.TypologyMuseological)
	}
	in.AuthorIDs = uniqueIDs(in.AuthorIDs)
}

// Validate normalizes the input and reports every problem found.
func (in *PieceInput) Validate(today models.Date) *forms.Errors {
	in.Normalize()
	errs := forms.NewErrors()

	if errs.RequiredMsg("denomination", in.Denomination, "Informe a denominação da peça.") {
		errs.MaxLength("denomination", in.Denomination, 100)
	}
	if errs.RequiredMsg("titleByAuthor", in.TitleByAuthor, "Informe o título atribuído pelo autor(a).") {
		errs.MaxLength("titleByAuthor", in.TitleByAuthor, 100)
	}
	errs.MaxLength("registryNumber", deref(in.RegistryNumber), 10)
	errs.MaxLength("orderNumber", deref(in.OrderNumber), 3)
	errs.Choice("status", in.Status, models.PieceStatusChoices)
	errs.MaxLength("thesaurus", deref(in.Thesaurus), 100)
	errs.RequiredMsg("description", in.Description, "Descreva a peça.")
	errs.MaxLength("dimensions", deref(in.Dimensions), 30)
	errs.RequiredMsg("materialTechnique", in.MaterialTechnique, "Informe o material e a técnica aplicados.")
	if errs.RequiredMsg("conservationState", in.ConservationState, "Selecione o estado de conservação da peça.") {
		errs.Choice("conservationState", in.ConservationState, models.ConservationChoices)
	}
	if errs.RequiredMsg("productionPlace", in.ProductionPlace, "Informe o local de produção da peça.") {
		errs.MaxLength("productionPlace", in.ProductionPlace, 200)
	}
	startOK := errs.ValidDate("productionStartDate", in.ProductionStartDate)
	endOK := errs.ValidDate("productionEndDate", in.ProductionEndDate)
	errs.NotAfter("productionStartDate", in.ProductionStartDate, today)
	errs.NotAfter("productionEndDate", in.ProductionEndDate, today)
	if startOK && endOK && in.ProductionStartDate != nil && in.ProductionEndDate != nil && in.ProductionEndDate.Before(*in.ProductionStartDate) {
		errs.AddNonField("A data final de produção não pode ser anterior à data inicial.")
	}
	errs.Choice("typology", in.Typology, models.TypologyChoices)
	if errs.RequiredMsg("acquisitionMethod", in.AcquisitionMethod, "Selecione a forma de aquisição da peça.") {
		errs.Choice("acquisitionMethod", in.AcquisitionMethod, models.AcquisitionChoices)
	}
	return errs
}

// ToModel builds the piece row without its associations.
func (in PieceInput) ToModel() models.CollectionPieceModel {
	return models.CollectionPieceModel{
		Denomination:           in.Denomination,
		TitleByAuthor:          in.TitleByAuthor,
		RegistryNumber:         in.RegistryNumber,
		OrderNumber:            in.OrderNumber,
		Status:                 models.PieceStatus(in.Status),
		Thesaurus:              in.Thesaurus,
		Description:            in.Description,
		Dimensions:             in.Dimensions,
		MaterialTechnique:      in.MaterialTechnique,
		ConservationState:      models.ConservationState(in.ConservationState),
		ProductionPlace:        in.ProductionPlace,
		ProductionStartDate:    in.ProductionStartDate,
		ProductionEndDate:      in.ProductionEndDate,
		CanReproduce:           in.CanReproduce,
		ReproductionConditions: in.ReproductionConditions,
		Typology:               models.Typology(in.Typology),
		AcquisitionMethod:      models.AcquisitionMethod(in.AcquisitionMethod),
		OrganizingAxisID:       in.OrganizingAxisID,
		ExhibitionID:           in.ExhibitionID,
		InternalLocationID:     in.InternalLocationID,
		Published:              in.Published,
	}
}

// PieceInputFromModel is the inverse of ToModel, used to bind edit forms.
func PieceInputFromModel(p models.CollectionPieceModel) PieceInput {
	ids := make([]int, 0, len(p.Authors))
	for _, a := range p.Authors {
		ids = append(ids, a.ID)
	}
	return PieceInput{
		Denomination:           p.Denomination,
		AuthorIDs:              ids,
		TitleByAuthor:          p.TitleByAuthor,
		RegistryNumber:         p.RegistryNumber,
		OrderNumber:            p.OrderNumber,
		Status:                 string(p.Status),
		Thesaurus:              p.Thesaurus,
		Description:            p.Description,
		Dimensions:             p.Dimensions,
		MaterialTechnique:      p.MaterialTechnique,
		ConservationState:      string(p.ConservationState),
		ProductionPlace:        p.ProductionPlace,
		ProductionStartDate:    p.ProductionStartDate,
		ProductionEndDate:      p.ProductionEndDate,
		CanReproduce:           p.CanReproduce,
		ReproductionConditions: p.ReproductionConditions,
		Typology:               string(p.Typology),
		AcquisitionMethod:      string(p.AcquisitionMethod),
		OrganizingAxisID:       p.OrganizingAxisID,
		ExhibitionID:           p.ExhibitionID,
		InternalLocationID:     p.InternalLocationID,
		Published:              p.Published,
	}
}

// PieceSummaryDTO is the list view of a piece with related names resolved.
type PieceSummaryDTO struct {
	ID                   int     `json:"id"`
	Denomination         string  `json:"denomination"`
	TitleByAuthor        string  `json:"titleByAuthor"`
	RegistryNumber       *string `json:"registryNumber,omitempty"`
	Status               string  `json:"status"`
	StatusLabel          string  `json:"statusLabel"`
	OrganizingAxisLabel  *string `json:"organizingAxisLabel,omitempty"`
	ExhibitionName       *string `json:"exhibitionName,omitempty"`
	InternalLocationName *string `json:"internalLocationName,omitempty"`
	Published            bool    `json:"published"`
	MediaCount           int     `json:"mediaCount"`
}

func NewPieceSummary(p models.CollectionPieceModel) PieceSummaryDTO {
	dto := PieceSummaryDTO{
		ID:             p.ID,
		Denomination:   p.Denomination,
		TitleByAuthor:  p.TitleByAuthor,
		RegistryNumber: p.RegistryNumber,
		Status:         string(p.Status),
		StatusLabel:    models.ChoiceLabel(models.PieceStatusChoices, string(p.Status)),
		Published:      p.Published,
		MediaCount:     len(p.Media),
	}
	if p.OrganizingAxis != nil {
		dto.OrganizingAxisLabel = &p.OrganizingAxis.Label
	}
	if p.Exhibition != nil {
		dto.ExhibitionName = &p.Exhibition.Name
	}
	if p.InternalLocation != nil {
		dto.InternalLocationName = &p.InternalLocation.Label
	}
	return dto
}

func uniqueIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

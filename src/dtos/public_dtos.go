package dtos

import (
	"strconv"

	"github.com/ACORDE/memorial-acervo/src/catalog"
	"github.com/ACORDE/memorial-acervo/src/models"
)

// PieceDetailDTO is a piece with choice labels resolved and media URLs built.
type PieceDetailDTO struct {
	models.CollectionPieceModel
	StatusLabel            string     `json:"statusLabel"`
	ConservationStateLabel string     `json:"conservationStateLabel"`
	TypologyLabel          string     `json:"typologyLabel"`
	AcquisitionMethodLabel string     `json:"acquisitionMethodLabel"`
	ExhibitionTitle        *string    `json:"exhibitionTitle,omitempty"`
	Media                  []MediaDTO `json:"media"`
}

func NewPieceDetail(p models.CollectionPieceModel, url URLBuilder) PieceDetailDTO {
	dto := PieceDetailDTO{
		CollectionPieceModel:   p,
		StatusLabel:            models.ChoiceLabel(models.PieceStatusChoices, string(p.Status)),
		ConservationStateLabel: models.ChoiceLabel(models.ConservationChoices, string(p.ConservationState)),
		TypologyLabel:          models.ChoiceLabel(models.TypologyChoices, string(p.Typology)),
		AcquisitionMethodLabel: models.ChoiceLabel(models.AcquisitionChoices, string(p.AcquisitionMethod)),
		Media:                  NewMediaDTOs(p.Media, url),
	}
	if p.Exhibition != nil {
		title := p.Exhibition.Title()
		dto.ExhibitionTitle = &title
	}
	if dto.Authors == nil {
		dto.Authors = []models.PersonModel{}
	}
	return dto
}

// PublicAuthorDTO exposes only the public fields of an author.
type PublicAuthorDTO struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// PublicPieceDTO is the view of a published piece on the public site.
type PublicPieceDTO struct {
	ID                int               `json:"id"`
	Denomination      string            `json:"denominacao"`
	TitleByAuthor     string            `json:"titulo"`
	Description       string            `json:"descricao"`
	Dimensions        *string           `json:"dimensoes,omitempty"`
	MaterialTechnique string            `json:"materialTecnica"`
	ProductionPlace   string            `json:"localProducao"`
	Axis              string            `json:"eixo"`
	Exhibition        string            `json:"exposicao,omitempty"`
	Authors           []PublicAuthorDTO `json:"autores"`
	Media             []MediaDTO        `json:"midias"`
}

func NewPublicPiece(p models.CollectionPieceModel, url URLBuilder) PublicPieceDTO {
	authors := make([]PublicAuthorDTO, 0, len(p.Authors))
	for _, a := range p.Authors {
		authors = append(authors, PublicAuthorDTO{ID: a.ID, Name: a.Name})
	}
	dto := PublicPieceDTO{
		ID:                p.ID,
		Denomination:      p.Denomination,
		TitleByAuthor:     p.TitleByAuthor,
		Description:       p.Description,
		Dimensions:        p.Dimensions,
		MaterialTechnique: p.MaterialTechnique,
		ProductionPlace:   p.ProductionPlace,
		Axis:              p.AxisLabel(),
		Authors:           authors,
		Media:             NewMediaDTOs(p.Media, url),
	}
	if p.Exhibition != nil {
		dto.Exhibition = p.Exhibition.Name
	}
	return dto
}

func NewPublicPieces(pieces []models.CollectionPieceModel, url URLBuilder) []PublicPieceDTO {
	out := make([]PublicPieceDTO, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, NewPublicPiece(p, url))
	}
	return out
}

type CatalogGroupDTO struct {
	Title  string           `json:"titulo"`
	Pieces []PublicPieceDTO `json:"pecas"`
}

// CatalogDTO is the public catalog page.
type CatalogDTO struct {
	Mode              catalog.Mode                                `json:"tipo"`
	Search            string                                      `json:"busca"`
	ShowingSearch     bool                                        `json:"mostrandoBusca"`
	Groups            []CatalogGroupDTO                           `json:"grupos"`
	Results           []PublicPieceDTO                            `json:"resultados"`
	Exhibitions       []catalog.ExhibitionOption                  `json:"exposicoes"`
	ExhibitionsByMode map[catalog.Mode][]catalog.ExhibitionOption `json:"exposicoesPorTipo"`
	ExhibitionParam   string                                      `json:"exposicaoParam"`
}

func NewCatalogDTO(r catalog.Result, url URLBuilder) CatalogDTO {
	dto := CatalogDTO{
		Mode:              r.Mode,
		Search:            r.Search,
		ShowingSearch:     r.ShowingSearch,
		Groups:            make([]CatalogGroupDTO, 0, len(r.Groups)),
		Results:           NewPublicPieces(r.Results, url),
		Exhibitions:       make([]catalog.ExhibitionOption, 0, len(r.Exhibitions)),
		ExhibitionsByMode: r.ExhibitionsByMode,
		ExhibitionParam:   r.ExhibitionParam,
	}
	for _, g := range r.Groups {
		dto.Groups = append(dto.Groups, CatalogGroupDTO{Title: g.Title, Pieces: NewPublicPieces(g.Pieces, url)})
	}
	for _, e := range r.Exhibitions {
		dto.Exhibitions = append(dto.Exhibitions, catalog.ExhibitionOption{ID: strconv.Itoa(e.ID), Name: e.Name})
	}
	return dto
}

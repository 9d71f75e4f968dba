// Package catalog builds the public view of the collection: published pieces
// filtered by exhibition mode, exhibition and search term, grouped by
// organizing axis for physical exhibitions.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ACORDE/memorial-acervo/src/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Mode string

const (
	ModePhysical Mode = "fisico"
	ModeDigital  Mode = "digital"
)

// Query is the normalized form of the public catalog parameters.
type Query struct {
	Mode Mode
	// ExhibitionParam is echoed back to the client; it is emptied when the
	// raw value was not an integer.
	ExhibitionParam string
	ExhibitionID    *int
	Search          string
}

// ParseQuery normalizes the raw tipo, exposicao and q parameters.
func ParseQuery(tipo, exposicao, q string) Query {
	query := Query{Mode: ModePhysical}
	if Mode(tipo) == ModeDigital {
		query.Mode = ModeDigital
	}

	query.ExhibitionParam = strings.TrimSpace(exposicao)
	if query.ExhibitionParam != "" {
		id, err := strconv.Atoi(query.ExhibitionParam)
		if err != nil {
			query.ExhibitionParam = ""
		} else {
			query.ExhibitionID = &id
		}
	}

	query.Search = strings.TrimSpace(q)
	return query
}

type ExhibitionOption struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

type Group struct {
	Title  string
	Pieces []models.CollectionPieceModel
}

type Result struct {
	Mode              Mode
	Search            string
	ShowingSearch     bool
	Groups            []Group
	Results           []models.CollectionPieceModel
	Exhibitions       []models.ExhibitionModel
	ExhibitionsByMode map[Mode][]ExhibitionOption
	ExhibitionParam   string
}

// Build aggregates pieces for query. pieces are expected to carry their
// exhibition, axis and authors; unpublished pieces are ignored.
func Build(pieces []models.CollectionPieceModel, exhibitions []models.ExhibitionModel, query Query) Result {
	col := collate.New(language.BrazilianPortuguese)

	result := Result{
		Mode:              query.Mode,
		Search:            query.Search,
		ShowingSearch:     query.Search != "",
		ExhibitionParam:   query.ExhibitionParam,
		ExhibitionsByMode: map[Mode][]ExhibitionOption{ModePhysical: {}, ModeDigital: {}},
		Groups:            []Group{},
		Results:           []models.CollectionPieceModel{},
	}

	sortedExhibitions := append([]models.ExhibitionModel(nil), exhibitions...)
	sort.SliceStable(sortedExhibitions, func(i, j int) bool {
		return less(col, sortedExhibitions[i].Name, sortedExhibitions[j].Name, sortedExhibitions[i].ID, sortedExhibitions[j].ID)
	})
	for _, e := range sortedExhibitions {
		mode := modeOf(e)
		result.ExhibitionsByMode[mode] = append(result.ExhibitionsByMode[mode], ExhibitionOption{ID: strconv.Itoa(e.ID), Name: e.Name})
		if mode == query.Mode {
			result.Exhibitions = append(result.Exhibitions, e)
		}
	}

	var base []models.CollectionPieceModel
	for _, p := range pieces {
		if !p.Published || p.Exhibition == nil || modeOf(*p.Exhibition) != query.Mode {
			continue
		}
		if query.ExhibitionID != nil && (p.ExhibitionID == nil || *p.ExhibitionID != *query.ExhibitionID) {
			continue
		}
		base = append(base, p)
	}

	if query.Search != "" {
		result.Results = matchSearch(base, query.Search)
		sortPieces(col, result.Results)
		return result
	}

	if query.Mode == ModeDigital {
		result.Results = append(result.Results, base...)
		sortPieces(col, result.Results)
		return result
	}

	byAxis := map[string][]models.CollectionPieceModel{}
	var titles []string
	for _, p := range base {
		title := p.AxisLabel()
		if _, ok := byAxis[title]; !ok {
			titles = append(titles, title)
		}
		byAxis[title] = append(byAxis[title], p)
	}
	sort.SliceStable(titles, func(i, j int) bool {
		return col.CompareString(titles[i], titles[j]) < 0
	})
	for _, title := range titles {
		members := byAxis[title]
		sortPieces(col, members)
		result.Groups = append(result.Groups, Group{Title: title, Pieces: members})
	}
	return result
}

func modeOf(e models.ExhibitionModel) Mode {
	if e.Physical {
		return ModePhysical
	}
	return ModeDigital
}

// matchSearch keeps pieces whose denomination or any author name contains
// term, ignoring case. Each piece appears at most once.
func matchSearch(pieces []models.CollectionPieceModel, term string) []models.CollectionPieceModel {
	fold := cases.Fold()
	needle := fold.String(term)
	out := []models.CollectionPieceModel{}
	for _, p := range pieces {
		if strings.Contains(fold.String(p.Denomination), needle) {
			out = append(out, p)
			continue
		}
		for _, a := range p.Authors {
			if strings.Contains(fold.String(a.Name), needle) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func sortPieces(col *collate.Collator, pieces []models.CollectionPieceModel) {
	sort.SliceStable(pieces, func(i, j int) bool {
		return less(col, pieces[i].Denomination, pieces[j].Denomination, pieces[i].ID, pieces[j].ID)
	})
}

func less(col *collate.Collator, a, b string, idA, idB int) bool {
	if c := col.CompareString(a, b); c != 0 {
		return c < 0
	}
	return idA < idB
}

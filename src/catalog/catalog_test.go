package catalog

import (
	"testing"

	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

var (
	physicalA = models.ExhibitionModel{ID: 1, Name: "Raízes", Physical: true}
	physicalB = models.ExhibitionModel{ID: 2, Name: "Águas", Physical: true}
	digital   = models.ExhibitionModel{ID: 3, Name: "Virtual", Physical: false}
	axisArte  = models.OrganizingAxisModel{ID: 1, Label: "Arte"}
	axisFe    = models.OrganizingAxisModel{ID: 2, Label: "Fé"}
)

func piece(id int, name string, expo *models.ExhibitionModel, axis *models.OrganizingAxisModel, authors ...string) models.CollectionPieceModel {
	p := models.CollectionPieceModel{ID: id, Denomination: name, Published: true}
	if expo != nil {
		p.ExhibitionID = intPtr(expo.ID)
		p.Exhibition = expo
	}
	if axis != nil {
		p.OrganizingAxisID = intPtr(axis.ID)
		p.OrganizingAxis = axis
	}
	for i, a := range authors {
		p.Authors = append(p.Authors, models.PersonModel{ID: 100 + i, Name: a})
	}
	return p
}

func fixture() ([]models.CollectionPieceModel, []models.ExhibitionModel) {
	pieces := []models.CollectionPieceModel{
		piece(1, "Vaso", &physicalA, &axisArte, "Maria Bonita"),
		piece(2, "Carranca", &physicalA, &axisFe, "Mestre Guarany", "Maria Santos"),
		piece(3, "Ânfora", &physicalB, &axisArte),
		piece(4, "Banco", &physicalB, nil),
		piece(5, "Foto digital", &digital, &axisArte),
		piece(6, "Álbum", &digital, nil),
		piece(7, "Sem exposição", nil, &axisArte),
	}
	hidden := piece(8, "Rascunho", &physicalA, &axisArte)
	hidden.Published = false
	pieces = append(pieces, hidden)
	return pieces, []models.ExhibitionModel{physicalA, physicalB, digital}
}

func names(pieces []models.CollectionPieceModel) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.Denomination)
	}
	return out
}

func TestParseQuery(t *testing.T) {
	q := ParseQuery("outro", " 12 ", "  vaso ")
	assert.Equal(t, ModePhysical, q.Mode)
	require.NotNil(t, q.ExhibitionID)
	assert.Equal(t, 12, *q.ExhibitionID)
	assert.Equal(t, "12", q.ExhibitionParam)
	assert.Equal(t, "vaso", q.Search)

	q = ParseQuery("digital", "abc", "")
	assert.Equal(t, ModeDigital, q.Mode)
	assert.Nil(t, q.ExhibitionID)
	assert.Equal(t, "", q.ExhibitionParam)
}

func TestBuildGroupsPhysicalByAxis(t *testing.T) {
	pieces, expos := fixture()
	res := Build(pieces, expos, ParseQuery("", "", ""))

	require.Len(t, res.Groups, 3)
	assert.Equal(t, "Arte", res.Groups[0].Title)
	assert.Equal(t, []string{"Ânfora", "Vaso"}, names(res.Groups[0].Pieces))
	assert.Equal(t, models.NoAxisLabel, res.Groups[1].Title)
	assert.Equal(t, []string{"Banco"}, names(res.Groups[1].Pieces))
	assert.Equal(t, "Fé", res.Groups[2].Title)
	assert.Empty(t, res.Results)
	assert.False(t, res.ShowingSearch)
}

func TestBuildGroupsPartitionFilteredPieces(t *testing.T) {
	pieces, expos := fixture()
	res := Build(pieces, expos, ParseQuery("fisico", "", ""))

	seen := map[int]int{}
	for _, g := range res.Groups {
		for _, p := range g.Pieces {
			seen[p.ID]++
		}
	}
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1}, seen)
}

func TestBuildDigitalIsFlatSortedList(t *testing.T) {
	pieces, expos := fixture()
	res := Build(pieces, expos, ParseQuery("digital", "", ""))

	assert.Empty(t, res.Groups)
	assert.Equal(t, []string{"Álbum", "Foto digital"}, names(res.Results))
	require.Len(t, res.Exhibitions, 1)
	assert.Equal(t, "Virtual", res.Exhibitions[0].Name)
}

func TestBuildFiltersByExhibition(t *testing.T) {
	pieces, expos := fixture()
	res := Build(pieces, expos, ParseQuery("fisico", "2", ""))

	var all []string
	for _, g := range res.Groups {
		all = append(all, names(g.Pieces)...)
	}
	assert.ElementsMatch(t, []string{"Ânfora", "Banco"}, all)
	assert.Equal(t, "2", res.ExhibitionParam)
}

func TestBuildInvalidExhibitionIsIgnored(t *testing.T) {
	pieces, expos := fixture()
	res := Build(pieces, expos, ParseQuery("fisico", "x1", ""))

	assert.Equal(t, "", res.ExhibitionParam)
	assert.Len(t, res.Groups, 3)
}

func TestBuildSearchMatchesDenominationOrAuthorOnce(t *testing.T) {
	pieces, expos := fixture()
	res := Build(pieces, expos, ParseQuery("fisico", "", "MARIA"))

	assert.True(t, res.ShowingSearch)
	assert.Empty(t, res.Groups)
	assert.Equal(t, []string{"Carranca", "Vaso"}, names(res.Results))

	res = Build(pieces, expos, ParseQuery("fisico", "", "anc"))
	assert.Equal(t, []string{"Banco", "Carranca"}, names(res.Results))
}

func TestBuildSearchRespectsMode(t *testing.T) {
	pieces, expos := fixture()
	res := Build(pieces, expos, ParseQuery("digital", "", "vaso"))
	assert.Empty(t, res.Results)
}

func TestBuildExhibitionsByMode(t *testing.T) {
	_, expos := fixture()
	res := Build(nil, expos, ParseQuery("", "", ""))

	assert.Equal(t, []ExhibitionOption{{ID: "2", Name: "Águas"}, {ID: "1", Name: "Raízes"}}, res.ExhibitionsByMode[ModePhysical])
	assert.Equal(t, []ExhibitionOption{{ID: "3", Name: "Virtual"}}, res.ExhibitionsByMode[ModeDigital])
	assert.Empty(t, res.Groups)
}

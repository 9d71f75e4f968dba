package dtos

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = models.NewDate(2024, 5, 10)

func datePtr(y, m, d int) *models.Date {
	date := models.NewDate(y, time.Month(m), d)
	return &date
}

func strPtr(s string) *string { return &s }

func validPiece() PieceInput {
	return PieceInput{
		Denomination:      "Carranca",
		TitleByAuthor:     "Sem título",
		Description:       "Escultura em madeira",
		MaterialTechnique: "Madeira entalhada",
		ConservationState: "BOM",
		ProductionPlace:   "Juazeiro, BA",
		AcquisitionMethod: "DOA",
	}
}

func TestPieceInputDefaults(t *testing.T) {
	in := validPiece()
	in.Thesaurus = strPtr("   ")
	in.AuthorIDs = []int{3, 3, 1}
	zero := 0
	in.OrganizingAxisID = &zero

	errs := in.Validate(today)

	assert.False(t, errs.HasErrors())
	assert.Equal(t, "LC", in.Status)
	assert.Equal(t, "MUS", in.Typology)
	assert.Nil(t, in.Thesaurus)
	assert.Nil(t, in.OrganizingAxisID)
	assert.Equal(t, []int{3, 1}, in.AuthorIDs)
}

func TestPieceInputRequiredMessages(t *testing.T) {
	in := PieceInput{}
	errs := in.Validate(today)

	assert.Equal(t, []string{"Informe a denominação da peça."}, errs.Fields["denomination"])
	assert.Equal(t, []string{"Informe o título atribuído pelo autor(a)."}, errs.Fields["titleByAuthor"])
	assert.Equal(t, []string{"Descreva a peça."}, errs.Fields["description"])
	assert.Equal(t, []string{"Informe o material e a técnica aplicados."}, errs.Fields["materialTechnique"])
	assert.Equal(t, []string{"Selecione o estado de conservação da peça."}, errs.Fields["conservationState"])
	assert.Equal(t, []string{"Informe o local de produção da peça."}, errs.Fields["productionPlace"])
	assert.Equal(t, []string{"Selecione a forma de aquisição da peça."}, errs.Fields["acquisitionMethod"])
}

func TestPieceInputRejectsFutureAndInvertedDates(t *testing.T) {
	in := validPiece()
	in.ProductionStartDate = datePtr(2024, 5, 11)
	in.ProductionEndDate = datePtr(2020, 1, 1)

	errs := in.Validate(today)

	assert.Len(t, errs.Fields["productionStartDate"], 1)
	assert.Empty(t, errs.Fields["productionEndDate"])
	assert.Len(t, errs.NonField, 1)
}

func TestPieceInputAcceptsToday(t *testing.T) {
	in := validPiece()
	in.ProductionStartDate = datePtr(2024, 5, 10)
	assert.False(t, in.Validate(today).HasErrors())
}

func TestPieceInputRejectsUnknownChoice(t *testing.T) {
	in := validPiece()
	in.ConservationState = "XYZ"
	errs := in.Validate(today)
	require.Len(t, errs.Fields["conservationState"], 1)
	assert.Contains(t, errs.Fields["conservationState"][0], "XYZ")
}

func TestPersonInputDefaultsAndEmail(t *testing.T) {
	in := PersonInput{Name: " Maria ", Biography: strPtr("Artesã"), Email: strPtr("not-an-email")}
	errs := in.Validate(today)

	assert.Equal(t, []string{"Informe um endereço de email válido."}, errs.Fields["email"])

	in.Email = strPtr("maria@example.com")
	require.False(t, in.Validate(today).HasErrors())
	m := in.ToModel()
	assert.Equal(t, "Maria", m.Name)
	assert.True(t, m.NaturalPerson)
	assert.True(t, m.IsAuthor)
}

func TestPersonInputRequiresBiographyAndPastBirth(t *testing.T) {
	in := PersonInput{Name: "João", BirthDate: datePtr(2030, 1, 1)}
	errs := in.Validate(today)

	assert.Equal(t, []string{forms.MsgRequired}, errs.Fields["biography"])
	assert.Len(t, errs.Fields["birthDate"], 1)
}

func TestExhibitionEndBeforeStartIsSingleNonFieldError(t *testing.T) {
	in := ExhibitionInput{
		Name:        "Olhos D'Água",
		Description: "Mostra",
		StartDate:   models.NewDate(2024, 3, 10),
		EndDate:     models.NewDate(2024, 3, 1),
		Location:    "Sede",
		Organizer:   "ACORDE",
	}
	errs := in.Validate()

	assert.Equal(t, []string{MsgExhibitionDates}, errs.NonField)
	assert.Empty(t, errs.Fields)
	assert.True(t, in.ToModel().Physical)
}

func TestExhibitionSameDayIsValid(t *testing.T) {
	in := ExhibitionInput{
		Name: "A", Description: "B", Location: "C", Organizer: "D",
		StartDate: models.NewDate(2024, 3, 1), EndDate: models.NewDate(2024, 3, 1),
	}
	assert.False(t, in.Validate().HasErrors())
}

func TestHistoryInputDefaultsDatesToToday(t *testing.T) {
	in := HistoryInput{EventTypeID: 1}
	require.False(t, in.Validate(today).HasErrors())
	m := in.ToModel(9)
	assert.Equal(t, today, m.StartDate)
	assert.Equal(t, today, m.EndDate)
	assert.Equal(t, 9, m.PieceID)

	in = HistoryInput{StartDate: datePtr(2024, 2, 2), EndDate: datePtr(2024, 1, 1)}
	errs := in.Validate(today)
	assert.Equal(t, []string{forms.MsgRequired}, errs.Fields["eventTypeId"])
	assert.Equal(t, []string{MsgHistoryDates}, errs.NonField)
}

func TestUnreadableDatesAreFieldErrors(t *testing.T) {
	in := validPiece()
	require.NoError(t, json.Unmarshal([]byte(`{"productionStartDate":"2020-13-01","productionEndDate":"2019-01-01"}`), &in))
	errs := in.Validate(today)
	assert.Equal(t, []string{forms.MsgInvalidDate}, errs.Fields["productionStartDate"])
	assert.NotContains(t, errs.Fields, "productionEndDate")
	assert.Empty(t, errs.NonField)

	var exhibition ExhibitionInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Memórias","description":"d","location":"Sala","organizer":"M","startDate":"31/02/2024","endDate":"2024-03-01"}`), &exhibition))
	errs = exhibition.Validate()
	assert.Equal(t, []string{forms.MsgInvalidDate}, errs.Fields["startDate"])
	assert.Empty(t, errs.NonField)

	var history HistoryInput
	require.NoError(t, json.Unmarshal([]byte(`{"eventTypeId":1,"startDate":"ontem"}`), &history))
	errs = history.Validate(today)
	assert.Equal(t, []string{forms.MsgInvalidDate}, errs.Fields["startDate"])
	assert.True(t, history.StartDate.Invalid())

	var person PersonInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ana","biography":"b","birthDate":"1990-02-30"}`), &person))
	errs = person.Validate(today)
	assert.Equal(t, []string{forms.MsgInvalidDate}, errs.Fields["birthDate"])
}

func TestMediaRowValidation(t *testing.T) {
	row := MediaRowInput{}
	assert.True(t, row.IsEmpty())

	row = MediaRowInput{Caption: "Frente"}
	errs := row.Validate()
	assert.Equal(t, []string{MsgMediaFileRequired}, errs.Fields["arquivo"])
	assert.Equal(t, "F", row.Type)

	row = MediaRowInput{
		Caption:          "Frente",
		File:             &storage.Upload{Reader: strings.NewReader("x"), OriginalName: "frente.exe"},
		AudioDescription: &storage.Upload{Reader: strings.NewReader("x"), OriginalName: "audio.wav"},
	}
	errs = row.Validate()
	assert.Len(t, errs.Fields["arquivo"], 1)
	assert.Len(t, errs.Fields["audio_descricao"], 1)

	row = MediaRowInput{ID: 4, Caption: "Verso"}
	assert.False(t, row.Validate().HasErrors())

	row = MediaRowInput{ID: 4, Delete: true}
	assert.False(t, row.Validate().HasErrors())
}

func TestNewMediaDTOBuildsURLs(t *testing.T) {
	file := "acervo/frente.jpg"
	dto := NewMediaDTO(models.MediaModel{ID: 1, PieceID: 2, Type: "F", File: &file}, func(n string) string {
		return "https://memorial.example/media/" + n
	})
	require.NotNil(t, dto.FileURL)
	assert.Equal(t, "https://memorial.example/media/acervo/frente.jpg", *dto.FileURL)
	assert.Nil(t, dto.AudioDescriptionURL)
	assert.Equal(t, "Foto/Digitalização", dto.TypeLabel)
}

func TestSystemConfigDTOMasksKey(t *testing.T) {
	key := "sk-abcdef1234"
	dto := NewSystemConfigDTO(models.SystemConfigModel{ID: 1, OpenAIKey: &key})
	assert.True(t, dto.HasOpenAIKey)
	assert.Equal(t, "*********1234", dto.MaskedOpenAIKey)

	in := SystemConfigInput{OpenAIKey: strPtr("  ")}
	in.Normalize()
	assert.Nil(t, in.OpenAIKey)
}

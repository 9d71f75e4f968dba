package forms

import (
	"testing"

	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldByName(t *testing.T, form Form, name string) Field {
	t.Helper()
	for _, f := range form.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not found", name)
	return Field{}
}

func TestBuildAppliesPolicyByKind(t *testing.T) {
	form := Build(PieceDefinition, nil, nil)

	assert.Equal(t, "form-control", fieldByName(t, form, "denomination").Attrs["class"])
	assert.Equal(t, "form-control", fieldByName(t, form, "description").Attrs["class"])
	assert.Equal(t, "form-select", fieldByName(t, form, "status").Attrs["class"])
	assert.Equal(t, "form-select", fieldByName(t, form, "authorIds").Attrs["class"])
	assert.Equal(t, "multiple", fieldByName(t, form, "authorIds").Attrs["multiple"])
	assert.Equal(t, "form-check-input", fieldByName(t, form, "published").Attrs["class"])
	assert.Equal(t, "date", fieldByName(t, form, "productionStartDate").Attrs["type"])
	assert.Equal(t, "3", fieldByName(t, form, "description").Attrs["rows"])
}

func TestBuildCarriesPlaceholdersAndEmptyLabels(t *testing.T) {
	form := Build(PieceDefinition, nil, nil)

	assert.Equal(t, "Ex.: 1234-AB", fieldByName(t, form, "registryNumber").Attrs["placeholder"])
	for _, name := range []string{"organizingAxisId", "exhibitionId", "internalLocationId"} {
		assert.Equal(t, "Selecione uma opção", fieldByName(t, form, name).EmptyLabel)
	}
}

func TestBuildMarksInvalidFields(t *testing.T) {
	errs := NewErrors()
	errs.Add("denomination", "Informe a denominação da peça.")
	errs.AddNonField("geral")

	form := Build(PieceDefinition, errs, map[string]interface{}{"denomination": ""})

	denomination := fieldByName(t, form, "denomination")
	assert.Equal(t, "form-control is-invalid", denomination.Attrs["class"])
	assert.Equal(t, []string{"Informe a denominação da peça."}, denomination.Errors)
	assert.Equal(t, "form-control", fieldByName(t, form, "titleByAuthor").Attrs["class"])
	assert.Equal(t, []string{"geral"}, form.NonFieldErrors)
}

func TestAddClassIsIdempotent(t *testing.T) {
	assert.Equal(t, "form-control is-invalid", addClass("form-control is-invalid", "is-invalid"))
	assert.Equal(t, "is-invalid", addClass("", "is-invalid"))
}

func TestWithChoicesDoesNotMutateDefinition(t *testing.T) {
	choices := []models.Choice{{Value: "1", Label: "Eixo A"}}
	def := PieceDefinition.WithChoices("organizingAxisId", choices)

	got, ok := def.Field("organizingAxisId")
	require.True(t, ok)
	assert.Equal(t, choices, got.Choices)

	original, _ := PieceDefinition.Field("organizingAxisId")
	assert.Empty(t, original.Choices)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"peca", "pessoa", "exposicao", "eixo", "local-interno", "tipo-evento", "historico", "midia", "configuracoes"} {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}
	_, ok := Lookup("inexistente")
	assert.False(t, ok)
}

func TestErrorsMergeAndErr(t *testing.T) {
	row := NewErrors()
	row.Add("legenda", MsgRequired)
	row.AddNonField("linha inválida")

	all := NewErrors()
	assert.NoError(t, all.Err("midia"))
	all.Merge("midia-0-", row)

	assert.Equal(t, []string{MsgRequired}, all.Fields["midia-0-legenda"])
	assert.Equal(t, []string{"linha inválida"}, all.Fields["midia-0"])

	err := all.Err("midia")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "midia", verr.Form)
}

func TestMaxLengthCountsRunes(t *testing.T) {
	errs := NewErrors()
	errs.MaxLength("label", "ção", 3)
	assert.False(t, errs.HasErrors())
	errs.MaxLength("label", "ações", 3)
	assert.True(t, errs.HasErrors())
}

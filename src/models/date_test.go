package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var payload struct {
		Start Date  `json:"start"`
		End   *Date `json:"end"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-03-09","end":null}`), &payload))
	assert.Equal(t, NewDate(2024, time.March, 9), payload.Start)
	assert.Nil(t, payload.End)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-03-09","end":null}`, string(out))
}

func TestDateKeepsUnparseableStrings(t *testing.T) {
	for _, raw := range []string{"09/03/2024", "2020-13-01"} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"`+raw+`"`), &d))
		assert.True(t, d.Invalid(), raw)
		assert.True(t, d.IsZero(), raw)

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, `"`+raw+`"`, string(out))
	}

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`20200101`), &d))

	valid := NewDate(2020, time.January, 1)
	assert.False(t, valid.Invalid())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2023-12-01 00:00:00+00:00"))
	assert.Equal(t, "2023-12-01", d.String())

	require.NoError(t, d.Scan(time.Date(2020, 1, 2, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, NewDate(2020, time.January, 2), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestExhibitionTitle(t *testing.T) {
	e := ExhibitionModel{
		Name:      "Memórias",
		StartDate: NewDate(2024, time.May, 1),
		EndDate:   NewDate(2024, time.June, 30),
	}
	assert.Equal(t, "Memórias de 01/05/2024 à 30/06/2024", e.Title())
}

func TestChoiceLookup(t *testing.T) {
	assert.True(t, IsChoice(PieceStatusChoices, "NL"))
	assert.False(t, IsChoice(PieceStatusChoices, "XX"))
	assert.Equal(t, "Compra", ChoiceLabel(AcquisitionChoices, "CMP"))

	code, ok := ChoiceValue(AcquisitionChoices, " doação ")
	assert.True(t, ok)
	assert.Equal(t, "DOA", code)
}

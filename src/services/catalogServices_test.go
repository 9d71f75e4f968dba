package services

import (
	"testing"
	"time"

	"github.com/ACORDE/memorial-acervo/src/catalog"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogOnlyPublishedPieces(t *testing.T) {
	database := newTestDB(t)
	service := NewCatalogService(database)

	physical := models.ExhibitionModel{Name: "Raízes", Physical: true, StartDate: models.NewDate(2024, time.January, 1), EndDate: models.NewDate(2024, time.February, 1)}
	require.NoError(t, database.Create(&physical).Error)
	axis := models.OrganizingAxisModel{Label: "Trabalho"}
	require.NoError(t, database.Create(&axis).Error)

	shown := createPiece(t, database, "Pilão")
	hidden := createPiece(t, database, "Cesto")
	loose := createPiece(t, database, "Alguidar")
	require.NoError(t, database.Model(&shown).Updates(map[string]interface{}{"published": true, "exhibition_id": physical.ID, "organizing_axis_id": axis.ID}).Error)
	require.NoError(t, database.Model(&hidden).Update("exhibition_id", physical.ID).Error)
	require.NoError(t, database.Model(&loose).Update("published", true).Error)

	result, err := service.GetCatalog(catalog.ParseQuery("", "", ""))
	require.NoError(t, err)
	require.Len(t, result.Groups, 1)
	assert.Equal(t, "Trabalho", result.Groups[0].Title)
	require.Len(t, result.Groups[0].Pieces, 1)
	assert.Equal(t, shown.ID, result.Groups[0].Pieces[0].ID)
	assert.Len(t, result.ExhibitionsByMode[catalog.ModePhysical], 1)

	piece, err := service.GetPublishedPiece(shown.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pilão", piece.Denomination)

	var nf *ErrNotFound
	_, err = service.GetPublishedPiece(hidden.ID)
	assert.ErrorAs(t, err, &nf)
}

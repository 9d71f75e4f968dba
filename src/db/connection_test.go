package db

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "dsn")
	assert.Error(t, err)
}

func TestRecordNotFoundIsNotLogged(t *testing.T) {
	var out bytes.Buffer
	database, err := open("sqlite", "file:db_not_found_log?mode=memory&cache=shared", &out)
	require.NoError(t, err)
	require.NoError(t, Migrate(database))

	var piece models.CollectionPieceModel
	err = database.First(&piece, 42).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, out.String())

	var n int
	require.Error(t, database.Raw("SELECT count(*) FROM tabela_inexistente").Scan(&n).Error)
	assert.Contains(t, out.String(), "tabela_inexistente")
	assert.NotContains(t, out.String(), "\x1b[")
}

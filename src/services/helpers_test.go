package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ACORDE/memorial-acervo/src/db"
	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	database, err := db.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return database
}

func newTestStore(t *testing.T) *storage.LocalStore {
	t.Helper()
	return storage.NewLocalStore(t.TempDir())
}

func upload(name, content string) *storage.Upload {
	return &storage.Upload{Reader: bytes.NewReader([]byte(content)), OriginalName: name, Size: int64(len(content))}
}

func validPiece() dtos.PieceInput {
	return dtos.PieceInput{
		Denomination:      "Pilão de madeira",
		TitleByAuthor:     "Pilão",
		Description:       "Pilão usado na comunidade.",
		MaterialTechnique: "Madeira entalhada",
		ConservationState: string(models.ConservationGood),
		ProductionPlace:   "Olhos D'Água",
		AcquisitionMethod: string(models.AcquisitionDonation),
	}
}

func createPiece(t *testing.T, database *gorm.DB, denomination string) models.CollectionPieceModel {
	t.Helper()
	piece := validPiece().ToModel()
	piece.Denomination = denomination
	piece.Status = models.StatusLocated
	piece.Typology = models.TypologyMuseological
	require.NoError(t, database.Create(&piece).Error)
	return piece
}

func createMedia(t *testing.T, database *gorm.DB, pieceID int, file *string) models.MediaModel {
	t.Helper()
	caption := "Legenda"
	media := models.MediaModel{PieceID: pieceID, Type: models.MediaPhoto, File: file, Caption: &caption, UploadDate: models.Today()}
	require.NoError(t, database.Create(&media).Error)
	return media
}

type fakeDescriber struct {
	calls int
	text  string
	err   error
	key   string
	image string
}

func (f *fakeDescriber) Describe(_ context.Context, apiKey, imageDataURL string) (string, error) {
	f.calls++
	f.key = apiKey
	f.image = imageDataURL
	return f.text, f.err
}

type testEnv struct {
	db          *gorm.DB
	store       *storage.LocalStore
	media       *MediaService
	pieces      *PieceService
	configs     *SystemConfigService
	description *DescriptionService
	describer   *fakeDescriber
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := newTestDB(t)
	store := newTestStore(t)
	log := logger.Nop()
	media := NewMediaService(database, store, nil, log)
	configs := NewSystemConfigService(database)
	describer := &fakeDescriber{}
	return &testEnv{
		db:          database,
		store:       store,
		media:       media,
		pieces:      NewPieceService(database, store, media, log),
		configs:     configs,
		description: NewDescriptionService(database, configs, media, store, describer, log),
		describer:   describer,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

package services

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	enabled bool
	name    string
	body    string
	err     error
	links   []string
}

func (f *fakeFetcher) Enabled() bool { return f.enabled }

func (f *fakeFetcher) Fetch(_ context.Context, link string) (io.ReadCloser, string, error) {
	f.links = append(f.links, link)
	if f.err != nil {
		return nil, "", f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), f.name, nil
}

const driveLink = "https://drive.google.com/file/d/abc123/view"

func TestSaveMediaFormsetOnExistingPiece(t *testing.T) {
	env := newTestEnv(t)
	piece := createPiece(t, env.db, "Pilão")

	media, err := env.media.SaveMediaFormset(piece.ID, []dtos.MediaRowInput{
		{Index: 0, Caption: "Áudio", Type: string(models.MediaAudio), File: upload("canto.ogg", "ogg")},
	})
	require.NoError(t, err)
	require.Len(t, media, 1)
	assert.Equal(t, models.MediaAudio, media[0].Type)

	_, err = env.media.SaveMediaFormset(piece.ID, []dtos.MediaRowInput{
		{Index: 0, ID: media[0].ID, Caption: ""},
	})
	var invalid *forms.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, forms.MediaForm, invalid.Form)
	assert.Equal(t, []string{forms.MsgRequired}, invalid.Errors.Fields["midia-0-legenda"])

	var nf *ErrNotFound
	_, err = env.media.SaveMediaFormset(999, nil)
	assert.ErrorAs(t, err, &nf)
}

func TestDeleteMediaRemovesFiles(t *testing.T) {
	env := newTestEnv(t)
	piece := createPiece(t, env.db, "Pilão")
	saved, err := env.media.SaveMediaFormset(piece.ID, []dtos.MediaRowInput{
		{Index: 0, Caption: "Frente", File: upload("frente.jpg", "1"), AudioDescription: upload("frente.mp3", "2")},
	})
	require.NoError(t, err)
	media := saved[0]

	other := createPiece(t, env.db, "Cesto")
	var nf *ErrNotFound
	assert.ErrorAs(t, env.media.DeleteMedia(other.ID, media.ID), &nf)

	require.NoError(t, env.media.DeleteMedia(piece.ID, media.ID))
	assert.False(t, fileExists(env.store, *media.File))
	assert.False(t, fileExists(env.store, *media.AudioDescription))
	remaining, err := env.media.GetMediaByPiece(piece.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestGenerateQRCodeReplacesPrevious(t *testing.T) {
	env := newTestEnv(t)
	piece := createPiece(t, env.db, "Pilão")
	media := createMedia(t, env.db, piece.ID, nil)

	first, err := env.media.GenerateQRCode(piece.ID, media.ID, "https://memorial.example/memorial/peca/1")
	require.NoError(t, err)
	firstName := *first.QRCode
	assert.Equal(t, "acervo/qrcodes/midia_"+strconv.Itoa(media.ID)+".png", firstName)
	content, err := env.store.ReadFile(firstName)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(content[:4]))

	second, err := env.media.GenerateQRCode(piece.ID, media.ID, "https://memorial.example/memorial/peca/1?v=2")
	require.NoError(t, err)
	assert.NotEqual(t, firstName, *second.QRCode)
	assert.False(t, fileExists(env.store, firstName))
	assert.True(t, fileExists(env.store, *second.QRCode))
	assert.Len(t, storedFiles(t, env.store, storage.QRCodeDir), 1)

	var stored models.MediaModel
	require.NoError(t, env.db.First(&stored, media.ID).Error)
	require.NotNil(t, stored.QRCode)
	assert.Equal(t, *second.QRCode, *stored.QRCode)
}

func TestImportFromDrive(t *testing.T) {
	env := newTestEnv(t)
	piece := createPiece(t, env.db, "Pilão")
	fetcher := &fakeFetcher{enabled: true, name: "Foto antiga.JPG", body: "jpg"}
	service := NewMediaService(env.db, env.store, fetcher, logger.Nop())

	media, err := service.ImportFromDrive(context.Background(), piece.ID, dtos.DriveImportInput{URL: driveLink, Caption: "Foto antiga"})
	require.NoError(t, err)
	assert.Equal(t, models.MediaPhoto, media.Type)
	assert.Equal(t, "acervo/Foto antiga.JPG", *media.File)
	assert.True(t, fileExists(env.store, *media.File))
	assert.Equal(t, []string{driveLink}, fetcher.links)

	_, err = service.ImportFromDrive(context.Background(), piece.ID, dtos.DriveImportInput{URL: "https://example.com/x.jpg", Caption: "x"})
	var invalid *forms.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Errors.Fields, "url")
	assert.Len(t, fetcher.links, 1)

	fetcher.name = "planilha.xlsx"
	_, err = service.ImportFromDrive(context.Background(), piece.ID, dtos.DriveImportInput{URL: driveLink, Caption: "x"})
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Errors.Fields, "url")

	fetcher.err = errors.New("403")
	_, err = service.ImportFromDrive(context.Background(), piece.ID, dtos.DriveImportInput{URL: driveLink, Caption: "x"})
	assert.EqualError(t, err, "403")
}

func TestImportFromDriveDisabled(t *testing.T) {
	env := newTestEnv(t)
	piece := createPiece(t, env.db, "Pilão")

	_, err := env.media.ImportFromDrive(context.Background(), piece.ID, dtos.DriveImportInput{URL: driveLink, Caption: "x"})
	assert.ErrorIs(t, err, ErrDriveDisabled)

	disabled := NewMediaService(env.db, env.store, &fakeFetcher{}, logger.Nop())
	_, err = disabled.ImportFromDrive(context.Background(), piece.ID, dtos.DriveImportInput{URL: driveLink, Caption: "x"})
	assert.ErrorIs(t, err, ErrDriveDisabled)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"gorm.io/gorm"
)

const (
	mediaEntity      = "Mídia"
	mediaPrefix      = "midia"
	msgForeignMedia  = "Selecione uma escolha válida. Essa opção não está entre as escolhas disponíveis."
	msgDriveDisabled = "Importação do Google Drive não configurada."
)

// ErrDriveDisabled is returned when no Drive credentials were configured.
var ErrDriveDisabled = errors.New(msgDriveDisabled)

type MediaService struct {
	db      *gorm.DB
	store   storage.Store
	fetcher storage.RemoteFetcher
	log     *logger.Logger
}

func NewMediaService(db *gorm.DB, store storage.Store, fetcher storage.RemoteFetcher, log *logger.Logger) *MediaService {
	return &MediaService{db: db, store: store, fetcher: fetcher, log: log}
}

// GetMediaByPiece lists a piece's media ordered by id
func (s *MediaService) GetMediaByPiece(pieceID int) ([]models.MediaModel, error) {
	if err := s.requirePiece(pieceID); err != nil {
		return nil, err
	}
	var media []models.MediaModel
	if err := s.db.Where("piece_id = ?", pieceID).Order("id").Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

// GetPieceMedia returns a media row only when it belongs to the piece
func (s *MediaService) GetPieceMedia(pieceID, mediaID int) (*models.MediaModel, error) {
	if err := s.requirePiece(pieceID); err != nil {
		return nil, err
	}
	var media models.MediaModel
	if err := s.db.Where("piece_id = ?", pieceID).First(&media, mediaID).Error; err != nil {
		return nil, notFound(err, mediaEntity)
	}
	return &media, nil
}

func (s *MediaService) GetMediaByID(mediaID int) (*models.MediaModel, error) {
	var media models.MediaModel
	if err := s.db.First(&media, mediaID).Error; err != nil {
		return nil, notFound(err, mediaEntity)
	}
	return &media, nil
}

// SaveMediaFormset applies every row of the formset atomically.
func (s *MediaService) SaveMediaFormset(pieceID int, rows []dtos.MediaRowInput) ([]models.MediaModel, error) {
	if err := s.requirePiece(pieceID); err != nil {
		return nil, err
	}
	plan, err := s.planFormset(pieceID, rows)
	if err != nil {
		return nil, err
	}
	if err := plan.writeFiles(s.store); err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return plan.apply(tx, pieceID)
	})
	if err != nil {
		plan.discard(s.store, s.log)
		return nil, err
	}
	plan.finish(s.store, s.log)
	return s.GetMediaByPiece(pieceID)
}

// DeleteMedia removes a media row and, after commit, its files
func (s *MediaService) DeleteMedia(pieceID, mediaID int) error {
	media, err := s.GetPieceMedia(pieceID, mediaID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.MediaModel{}, media.ID).Error; err != nil {
		return err
	}
	s.removeFiles(media.StoredFiles())
	return nil
}

// GenerateQRCode stores a QR code pointing at target and replaces the
// previous one of the media.
func (s *MediaService) GenerateQRCode(pieceID, mediaID int, target string) (*models.MediaModel, error) {
	media, err := s.GetPieceMedia(pieceID, mediaID)
	if err != nil {
		return nil, err
	}
	name, err := storage.SaveQRCode(s.store, media.ID, target)
	if err != nil {
		return nil, err
	}
	// Update writes through media, so keep the old name by value.
	var previous string
	if media.QRCode != nil {
		previous = *media.QRCode
	}
	if err := s.db.Model(media).Update("qr_code", name).Error; err != nil {
		_ = s.store.Remove(name)
		return nil, err
	}
	media.QRCode = &name
	if previous != "" && previous != name {
		s.removeFiles([]string{previous})
	}
	return media, nil
}

// ImportFromDrive downloads a file from a Drive link and attaches it as a
// new media row of the piece.
func (s *MediaService) ImportFromDrive(ctx context.Context, pieceID int, input dtos.DriveImportInput) (*models.MediaModel, error) {
	if s.fetcher == nil || !s.fetcher.Enabled() {
		return nil, ErrDriveDisabled
	}
	if err := s.requirePiece(pieceID); err != nil {
		return nil, err
	}
	errs := input.Validate()
	if input.URL != "" && !storage.IsDriveURL(input.URL) {
		errs.Add("url", "Informe um link do Google Drive.")
	}
	if err := errs.Bind(forms.MediaForm, &input); err != nil {
		return nil, err
	}

	s.log.Info("importing media from drive", "piece_id", pieceID)
	body, name, err := s.fetcher.Fetch(ctx, input.URL)
	if err != nil {
		s.log.Warn("drive import failed", "piece_id", pieceID, "error", err)
		return nil, err
	}
	defer body.Close()

	if !storage.ExtensionAllowed(name, models.AllowedMediaExtensions) {
		errs.Add("url", storage.ExtensionError(name, models.AllowedMediaExtensions))
		return nil, errs.Bind(forms.MediaForm, &input)
	}
	stored, err := s.store.Save(storage.MediaDir, name, body)
	if err != nil {
		return nil, err
	}
	caption := input.Caption
	media := models.MediaModel{
		PieceID:    pieceID,
		Type:       models.MediaType(input.Type),
		File:       &stored,
		UploadDate: models.Today(),
		Caption:    &caption,
	}
	if err := s.db.Create(&media).Error; err != nil {
		_ = s.store.Remove(stored)
		return nil, err
	}
	return &media, nil
}

func (s *MediaService) requirePiece(pieceID int) error {
	ok, err := exists(s.db, &models.CollectionPieceModel{}, pieceID)
	if err != nil {
		return err
	}
	if !ok {
		return &ErrNotFound{Entity: pieceEntity}
	}
	return nil
}

func (s *MediaService) removeFiles(names []string) {
	if err := storage.RemoveAll(s.store, names); err != nil {
		s.log.Warn("could not remove media files", "error", err)
	}
}

// planFormset validates the rows against the piece's current media. pieceID
// is zero while the piece is being created.
func (s *MediaService) planFormset(pieceID int, rows []dtos.MediaRowInput) (*mediaPlan, error) {
	existing := map[int]models.MediaModel{}
	if pieceID != 0 {
		var current []models.MediaModel
		if err := s.db.Where("piece_id = ?", pieceID).Find(&current).Error; err != nil {
			return nil, err
		}
		for _, m := range current {
			existing[m.ID] = m
		}
	}

	plan := &mediaPlan{existing: existing}
	errs := forms.NewErrors()
	for _, row := range rows {
		if row.IsEmpty() {
			continue
		}
		rowErrs := row.Validate()
		if row.ID != 0 {
			if _, ok := existing[row.ID]; !ok {
				rowErrs.Add("id", msgForeignMedia)
			}
		}
		errs.Merge(fmt.Sprintf("%s-%d-", mediaPrefix, row.Index), rowErrs)
		plan.rows = append(plan.rows, plannedRow{input: row})
	}
	if errs.HasErrors() {
		return nil, &forms.ValidationError{Form: forms.MediaForm, Errors: errs}
	}
	return plan, nil
}

type plannedRow struct {
	input     dtos.MediaRowInput
	file      string
	audio     string
	persisted models.MediaModel
}

// mediaPlan carries a validated formset through file writes, the database
// transaction and the final cleanup.
type mediaPlan struct {
	rows     []plannedRow
	existing map[int]models.MediaModel
	written  []string
	obsolete []string
}

func (p *mediaPlan) writeFiles(store storage.Store) error {
	for i := range p.rows {
		row := &p.rows[i]
		if row.input.Delete {
			continue
		}
		if up := row.input.File; up != nil {
			name, err := store.Save(storage.MediaDir, up.OriginalName, up.Reader)
			if err != nil {
				_ = storage.RemoveAll(store, p.written)
				p.written = nil
				return err
			}
			row.file = name
			p.written = append(p.written, name)
		}
		if up := row.input.AudioDescription; up != nil {
			name, err := store.Save(storage.AudioDescriptionDir, up.OriginalName, up.Reader)
			if err != nil {
				_ = storage.RemoveAll(store, p.written)
				p.written = nil
				return err
			}
			row.audio = name
			p.written = append(p.written, name)
		}
	}
	return nil
}

func (p *mediaPlan) apply(tx *gorm.DB, pieceID int) error {
	p.obsolete = nil
	for i := range p.rows {
		row := &p.rows[i]
		in := row.input

		if in.ID != 0 && in.Delete {
			if err := tx.Delete(&models.MediaModel{}, in.ID).Error; err != nil {
				return err
			}
			p.obsolete = append(p.obsolete, p.existing[in.ID].StoredFiles()...)
			continue
		}
		if in.Delete {
			continue
		}

		caption := in.Caption
		if in.ID == 0 {
			media := models.MediaModel{
				PieceID:         pieceID,
				Type:            models.MediaType(in.Type),
				UploadDate:      models.Today(),
				DescriptionText: in.DescriptionText,
				Caption:         &caption,
			}
			if row.file != "" {
				media.File = &row.file
			}
			if row.audio != "" {
				media.AudioDescription = &row.audio
			}
			if err := tx.Create(&media).Error; err != nil {
				return err
			}
			row.persisted = media
			continue
		}

		media := p.existing[in.ID]
		media.Type = models.MediaType(in.Type)
		media.Caption = &caption
		media.DescriptionText = in.DescriptionText
		if row.file != "" {
			if media.File != nil && *media.File != "" {
				p.obsolete = append(p.obsolete, *media.File)
			}
			media.File = &row.file
		}
		if row.audio != "" {
			if media.AudioDescription != nil && *media.AudioDescription != "" {
				p.obsolete = append(p.obsolete, *media.AudioDescription)
			}
			media.AudioDescription = &row.audio
		}
		if err := tx.Save(&media).Error; err != nil {
			return err
		}
		row.persisted = media
	}
	return nil
}

// discard removes the files written for a transaction that did not commit.
func (p *mediaPlan) discard(store storage.Store, log *logger.Logger) {
	if err := storage.RemoveAll(store, p.written); err != nil {
		log.Warn("could not remove uploaded files after rollback", "error", err)
	}
	p.written = nil
}

// finish removes files replaced or orphaned by a committed transaction.
func (p *mediaPlan) finish(store storage.Store, log *logger.Logger) {
	if err := storage.RemoveAll(store, p.obsolete); err != nil {
		log.Warn("could not remove replaced media files", "error", err, "files", strings.Join(p.obsolete, ","))
	}
	p.obsolete = nil
}

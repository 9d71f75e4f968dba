package services

import (
	"errors"
	"fmt"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pieceEntity = "Peça"

type PieceService struct {
	db    *gorm.DB
	store storage.Store
	media *MediaService
	log   *logger.Logger
}

func NewPieceService(db *gorm.DB, store storage.Store, media *MediaService, log *logger.Logger) *PieceService {
	return &PieceService{db: db, store: store, media: media, log: log}
}

func preloadPiece(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Authors", func(db *gorm.DB) *gorm.DB { return db.Order("name").Order("id") }).
		Preload("OrganizingAxis").
		Preload("Exhibition").
		Preload("InternalLocation").
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}

// GetAllPieces retrieves every piece ordered by denomination
func (s *PieceService) GetAllPieces() ([]models.CollectionPieceModel, error) {
	var pieces []models.CollectionPieceModel
	if err := preloadPiece(s.db).Order("denomination").Order("id").Find(&pieces).Error; err != nil {
		return nil, err
	}
	return pieces, nil
}

// GetPieceSummaries is the list view of GetAllPieces
func (s *PieceService) GetPieceSummaries() ([]dtos.PieceSummaryDTO, error) {
	pieces, err := s.GetAllPieces()
	if err != nil {
		return nil, err
	}
	summaries := make([]dtos.PieceSummaryDTO, 0, len(pieces))
	for _, p := range pieces {
		summaries = append(summaries, dtos.NewPieceSummary(p))
	}
	return summaries, nil
}

// GetPieceByID retrieves a piece with its relations
func (s *PieceService) GetPieceByID(id int) (*models.CollectionPieceModel, error) {
	var piece models.CollectionPieceModel
	if err := preloadPiece(s.db).First(&piece, id).Error; err != nil {
		return nil, notFound(err, pieceEntity)
	}
	return &piece, nil
}

// CreatePiece stores a piece and its media rows in one transaction.
func (s *PieceService) CreatePiece(input dtos.PieceInput, rows []dtos.MediaRowInput) (*models.CollectionPieceModel, error) {
	return s.savePiece(0, input, rows)
}

// UpdatePiece replaces the fields of a piece and applies its media rows in
// one transaction.
func (s *PieceService) UpdatePiece(id int, input dtos.PieceInput, rows []dtos.MediaRowInput) (*models.CollectionPieceModel, error) {
	if _, err := s.GetPieceByID(id); err != nil {
		return nil, err
	}
	return s.savePiece(id, input, rows)
}

func (s *PieceService) savePiece(id int, input dtos.PieceInput, rows []dtos.MediaRowInput) (*models.CollectionPieceModel, error) {
	authors, errs, err := s.checkPiece(&input)
	if err != nil {
		return nil, err
	}
	plan, err := s.media.planFormset(id, rows)
	if err != nil {
		var invalid *forms.ValidationError
		if !errors.As(err, &invalid) {
			return nil, err
		}
		errs.Merge("", invalid.Errors)
	}
	if err := errs.Bind(forms.PieceForm, &input); err != nil {
		return nil, err
	}
	if err := plan.writeFiles(s.store); err != nil {
		return nil, err
	}

	piece := input.ToModel()
	piece.ID = id
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if id == 0 {
			if err := tx.Omit(clause.Associations).Create(&piece).Error; err != nil {
				return err
			}
		} else if err := tx.Omit(clause.Associations).Save(&piece).Error; err != nil {
			return err
		}
		if err := replaceAuthors(tx, &piece, authors); err != nil {
			return err
		}
		return plan.apply(tx, piece.ID)
	})
	if err != nil {
		plan.discard(s.store, s.log)
		return nil, err
	}
	plan.finish(s.store, s.log)
	return s.GetPieceByID(piece.ID)
}

func replaceAuthors(tx *gorm.DB, piece *models.CollectionPieceModel, authors []models.PersonModel) error {
	assoc := tx.Model(piece).Association("Authors")
	if len(authors) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(authors)
}

// checkPiece validates the input and every referenced row, returning the
// authors to link.
func (s *PieceService) checkPiece(input *dtos.PieceInput) ([]models.PersonModel, *forms.Errors, error) {
	errs := input.Validate(models.Today())

	var authors []models.PersonModel
	if len(input.AuthorIDs) > 0 {
		if err := s.db.Where("id IN ?", input.AuthorIDs).Find(&authors).Error; err != nil {
			return nil, nil, err
		}
		found := make(map[int]bool, len(authors))
		for _, a := range authors {
			found[a.ID] = true
		}
		for _, id := range input.AuthorIDs {
			if !found[id] {
				errs.Add("authorIds", fmt.Sprintf("Faça uma escolha válida. %d não é uma das escolhas disponíveis.", id))
			}
		}
	}

	refs := []struct {
		field string
		id    *int
		model interface{}
	}{
		{"organizingAxisId", input.OrganizingAxisID, &models.OrganizingAxisModel{}},
		{"exhibitionId", input.ExhibitionID, &models.ExhibitionModel{}},
		{"internalLocationId", input.InternalLocationID, &models.InternalLocationModel{}},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		ok, err := exists(s.db, ref.model, *ref.id)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			errs.Add(ref.field, msgInvalidChoice)
		}
	}

	return authors, errs, nil
}

// DeletePiece removes a piece with its media and history. Stored files are
// removed once the transaction commits.
func (s *PieceService) DeletePiece(id int) error {
	var files []string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var piece models.CollectionPieceModel
		if err := tx.Preload("Media").First(&piece, id).Error; err != nil {
			return notFound(err, pieceEntity)
		}
		for _, m := range piece.Media {
			files = append(files, m.StoredFiles()...)
		}
		if err := tx.Where("piece_id = ?", id).Delete(&models.MediaModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("piece_id = ?", id).Delete(&models.HistoryEventModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&piece).Association("Authors").Clear(); err != nil {
			return err
		}
		return tx.Delete(&piece).Error
	})
	if err != nil {
		return err
	}
	s.media.removeFiles(files)
	return nil
}

// GetDeleteConfirmation reports what deleting a piece removes
func (s *PieceService) GetDeleteConfirmation(id int) (*dtos.DeleteConfirmationDTO, error) {
	piece, err := s.GetPieceByID(id)
	if err != nil {
		return nil, err
	}
	var history int64
	if err := s.db.Model(&models.HistoryEventModel{}).Where("piece_id = ?", id).Count(&history).Error; err != nil {
		return nil, err
	}
	return &dtos.DeleteConfirmationDTO{
		ID:      piece.ID,
		Label:   piece.Denomination,
		Cascade: map[string]int{"midias": len(piece.Media), "historicos": int(history)},
		Detach:  map[string]int{"autores": len(piece.Authors)},
	}, nil
}

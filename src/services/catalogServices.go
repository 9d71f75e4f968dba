package services

import (
	"github.com/ACORDE/memorial-acervo/src/catalog"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/gorm"
)

// CatalogService serves the public, read-only view of the collection.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// GetCatalog loads published pieces with their relations and aggregates them
// for query.
func (s *CatalogService) GetCatalog(query catalog.Query) (*catalog.Result, error) {
	var pieces []models.CollectionPieceModel
	err := preloadPiece(s.db).
		Where("published = ?", true).
		Where("exhibition_id IS NOT NULL").
		Find(&pieces).Error
	if err != nil {
		return nil, err
	}

	var exhibitions []models.ExhibitionModel
	if err := s.db.Find(&exhibitions).Error; err != nil {
		return nil, err
	}

	result := catalog.Build(pieces, exhibitions, query)
	return &result, nil
}

// GetPublishedPiece returns a published piece with authors ordered by name
// and media ordered by id.
func (s *CatalogService) GetPublishedPiece(id int) (*models.CollectionPieceModel, error) {
	var piece models.CollectionPieceModel
	err := preloadPiece(s.db).
		Where("published = ?", true).
		First(&piece, id).Error
	if err != nil {
		return nil, notFound(err, pieceEntity)
	}
	return &piece, nil
}

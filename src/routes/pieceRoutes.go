package routes

import (
	"github.com/ACORDE/memorial-acervo/src/controllers"
	"github.com/ACORDE/memorial-acervo/src/middleware"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"github.com/gin-gonic/gin"
)

// PieceServices groups what the piece, media and history routes need.
type PieceServices struct {
	Pieces      *services.PieceService
	Media       *services.MediaService
	Description *services.DescriptionService
	History     *services.HistoryService
	Store       storage.Store
}

func SetupPieceRoutes(router *gin.Engine, secret string, svc PieceServices, errs *controllers.ErrorResponder, links controllers.MediaLinks) {
	pieces := controllers.NewPieceController(svc.Pieces, errs, links)
	media := controllers.NewMediaController(svc.Media, svc.Description, svc.Store, errs, links)
	history := controllers.NewHistoryController(svc.History, errs)

	auth := middleware.AuthMiddleware(secret)

	pieceGroup := router.Group("/pecas")
	pieceGroup.Use(auth)
	{
		pieceGroup.GET("", pieces.GetAllPieces)
		pieceGroup.POST("", pieces.CreatePiece)
		pieceGroup.GET("/:id", pieces.GetPieceByID)
		pieceGroup.PUT("/:id", pieces.UpdatePiece)
		pieceGroup.DELETE("/:id", pieces.DeletePiece)
		pieceGroup.GET("/:id/excluir", pieces.GetDeleteConfirmation)

		// Media
		pieceGroup.GET("/:id/midias", media.GetMediaByPiece)
		pieceGroup.POST("/:id/midias", media.SaveMediaFormset)
		pieceGroup.POST("/:id/midias/drive", media.ImportFromDrive)
		pieceGroup.DELETE("/:id/midias/:midiaId", media.DeleteMedia)
		pieceGroup.POST("/:id/midias/:midiaId/descrever", media.DescribeMedia)
		pieceGroup.POST("/:id/midias/:midiaId/qrcode", media.GenerateQRCode)

		// History
		pieceGroup.GET("/:id/historico", history.GetHistoryByPiece)
		pieceGroup.POST("/:id/historico", history.CreateHistoryEvent)
		pieceGroup.GET("/:id/historico/:historicoId", history.GetHistoryEvent)
		pieceGroup.PUT("/:id/historico/:historicoId", history.UpdateHistoryEvent)
		pieceGroup.DELETE("/:id/historico/:historicoId", history.DeleteHistoryEvent)
		pieceGroup.GET("/:id/historico/:historicoId/excluir", history.GetDeleteConfirmation)
	}

	mediaGroup := router.Group("/midias")
	mediaGroup.Use(auth)
	{
		mediaGroup.GET("/:id/arquivo", media.ServeMediaFile)
	}

	// Spreadsheets
	router.POST("/importacoes/pecas", auth, pieces.ImportPieces)
	router.GET("/exportacoes/pecas", auth, pieces.ExportPieces)
}

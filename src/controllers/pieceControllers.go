package controllers

import (
	"bytes"
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PieceController struct {
	service *services.PieceService
	errs    *ErrorResponder
	links   MediaLinks
}

func NewPieceController(service *services.PieceService, errs *ErrorResponder, links MediaLinks) *PieceController {
	return &PieceController{service: service, errs: errs, links: links}
}

func (c *PieceController) GetAllPieces(ctx *gin.Context) {
	pieces, err := c.service.GetPieceSummaries()
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pieces)
}

func (c *PieceController) GetPieceByID(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	piece, err := c.service.GetPieceByID(id)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewPieceDetail(*piece, c.links.Builder(ctx.Request)))
}

func (c *PieceController) CreatePiece(ctx *gin.Context) {
	req, err := bindPieceRequest(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer req.Close()

	piece, err := c.service.CreatePiece(req.piece, req.rows)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dtos.NewPieceDetail(*piece, c.links.Builder(ctx.Request)))
}

func (c *PieceController) UpdatePiece(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	req, err := bindPieceRequest(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer req.Close()

	piece, err := c.service.UpdatePiece(id, req.piece, req.rows)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewPieceDetail(*piece, c.links.Builder(ctx.Request)))
}

func (c *PieceController) GetDeleteConfirmation(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	confirmation, err := c.service.GetDeleteConfirmation(id)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, confirmation)
}

func (c *PieceController) DeletePiece(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeletePiece(id); err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Peça excluída com sucesso"})
}

func (c *PieceController) ImportPieces(ctx *gin.Context) {
	fh, err := ctx.FormFile("arquivo")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Envie a planilha no campo arquivo"})
		return
	}
	src, err := fh.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Não foi possível abrir a planilha"})
		return
	}
	defer src.Close()

	result, err := c.service.ImportPiecesFromExcel(src)
	if err != nil {
		if result != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "imported": result.Imported, "errors": result.Errors})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *PieceController) ExportPieces(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.service.ExportPiecesToExcel(&buf); err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="acervo.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

package controllers

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

type MediaController struct {
	service     *services.MediaService
	description *services.DescriptionService
	store       storage.Store
	errs        *ErrorResponder
	links       MediaLinks
}

func NewMediaController(service *services.MediaService, description *services.DescriptionService, store storage.Store, errs *ErrorResponder, links MediaLinks) *MediaController {
	return &MediaController{service: service, description: description, store: store, errs: errs, links: links}
}

func (c *MediaController) GetMediaByPiece(ctx *gin.Context) {
	pieceID, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	media, err := c.service.GetMediaByPiece(pieceID)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewMediaDTOs(media, c.links.Builder(ctx.Request)))
}

// SaveMediaFormset accepts the multipart media formset of a piece.
func (c *MediaController) SaveMediaFormset(ctx *gin.Context) {
	pieceID, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if !isMultipart(ctx) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Envie as mídias como multipart/form-data"})
		return
	}
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, closers, err := parseMediaFormset(form)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer closeAll(closers)

	media, err := c.service.SaveMediaFormset(pieceID, rows)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewMediaDTOs(media, c.links.Builder(ctx.Request)))
}

func (c *MediaController) DeleteMedia(ctx *gin.Context) {
	pieceID, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	mediaID, ok := paramID(ctx, "midiaId")
	if !ok {
		return
	}
	if err := c.service.DeleteMedia(pieceID, mediaID); err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Mídia excluída com sucesso"})
}

func (c *MediaController) DescribeMedia(ctx *gin.Context) {
	pieceID, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	mediaID, ok := paramID(ctx, "midiaId")
	if !ok {
		return
	}
	text, err := c.description.DescribeMedia(ctx.Request.Context(), pieceID, mediaID)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"descricao": text})
}

// GenerateQRCode points the QR code of a media at the public page of its piece.
func (c *MediaController) GenerateQRCode(ctx *gin.Context) {
	pieceID, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	mediaID, ok := paramID(ctx, "midiaId")
	if !ok {
		return
	}
	media, err := c.service.GenerateQRCode(pieceID, mediaID, c.links.PublicPieceURL(ctx.Request, pieceID))
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewMediaDTO(*media, c.links.Builder(ctx.Request)))
}

func (c *MediaController) ImportFromDrive(ctx *gin.Context) {
	pieceID, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var input dtos.DriveImportInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	media, err := c.service.ImportFromDrive(ctx.Request.Context(), pieceID, input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dtos.NewMediaDTO(*media, c.links.Builder(ctx.Request)))
}

// ServeMediaFile streams the main file of a media with long-lived cache headers.
func (c *MediaController) ServeMediaFile(ctx *gin.Context) {
	mediaID, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	media, err := c.service.GetMediaByID(mediaID)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	if !media.HasFile() {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Mídia não possui arquivo associado."})
		return
	}
	path, err := c.store.Path(*media.File)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Arquivo da mídia não encontrado"})
		return
	}
	info, err := c.store.Stat(*media.File)
	if errors.Is(err, fs.ErrNotExist) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Arquivo da mídia não encontrado"})
		return
	}
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}

	modTime := info.ModTime().UTC()
	etag := fmt.Sprintf(`"%d-%d"`, media.ID, modTime.Unix())
	ctx.Header("Cache-Control", "public, max-age=31536000")
	ctx.Header("ETag", etag)
	ctx.Header("Last-Modified", modTime.Format(http.TimeFormat))

	if match := ctx.GetHeader("If-None-Match"); match == etag {
		ctx.Status(http.StatusNotModified)
		return
	}
	if since := ctx.GetHeader("If-Modified-Since"); since != "" {
		if t, err := time.Parse(http.TimeFormat, since); err == nil && !modTime.Truncate(time.Second).After(t) {
			ctx.Status(http.StatusNotModified)
			return
		}
	}

	if mtype, err := mimetype.DetectFile(path); err == nil {
		ctx.Header("Content-Type", mtype.String())
	}
	ctx.File(path)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/ACORDE/memorial-acervo/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorResponder writes service errors as JSON responses. Validation
// failures are answered with the bound form schema.
type ErrorResponder struct {
	forms *services.FormService
	log   *logger.Logger
}

func NewErrorResponder(forms *services.FormService, log *logger.Logger) *ErrorResponder {
	return &ErrorResponder{forms: forms, log: log}
}

func (r *ErrorResponder) Respond(ctx *gin.Context, err error) {
	var invalid *forms.ValidationError
	var described *services.DescriptionError
	var unknownForm *services.ErrUnknownForm
	switch {
	case errors.As(err, &invalid):
		body := gin.H{
			"error":          err.Error(),
			"fieldErrors":    invalid.Errors.Fields,
			"nonFieldErrors": invalid.Errors.NonField,
		}
		if form, ferr := r.forms.Schema(invalid.Form, invalid.Errors, invalid.Values); ferr == nil {
			body["form"] = form
		}
		ctx.JSON(http.StatusUnprocessableEntity, body)
	case errors.As(err, &described):
		body := gin.H{"error": described.Message}
		if described.Raw != nil {
			body["raw"] = described.Raw
		}
		ctx.JSON(described.Status, body)
	case errors.As(err, &unknownForm), errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDriveDisabled):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		r.log.Error("request failed", "method", ctx.Request.Method, "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// paramID reads a positive integer path parameter, answering 400 otherwise.
func paramID(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return 0, false
	}
	return id, true
}

// MediaLinks builds absolute URLs for stored files.
type MediaLinks struct {
	MediaURL    string
	SiteBaseURL string
}

func (l MediaLinks) Builder(r *http.Request) dtos.URLBuilder {
	return func(name string) string {
		return utils.BuildAbsoluteMediaURL(utils.MediaPath(l.MediaURL, name), l.SiteBaseURL, r)
	}
}

// PublicPieceURL is the address of the public page of a piece.
func (l MediaLinks) PublicPieceURL(r *http.Request, pieceID int) string {
	return utils.BuildAbsoluteMediaURL("/memorial/peca/"+strconv.Itoa(pieceID), l.SiteBaseURL, r)
}

package controllers

import (
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

// HistoryController handles the history events nested under a piece.
type HistoryController struct {
	service *services.HistoryService
	errs    *ErrorResponder
}

func NewHistoryController(service *services.HistoryService, errs *ErrorResponder) *HistoryController {
	return &HistoryController{service: service, errs: errs}
}

// historyIDs reads the piece id and, when withEvent is set, the event id.
func historyIDs(ctx *gin.Context, withEvent bool) (int, int, bool) {
	pieceID, ok := paramID(ctx, "id")
	if !ok {
		return 0, 0, false
	}
	if !withEvent {
		return pieceID, 0, true
	}
	eventID, ok := paramID(ctx, "historicoId")
	if !ok {
		return 0, 0, false
	}
	return pieceID, eventID, true
}

func (c *HistoryController) GetHistoryByPiece(ctx *gin.Context) {
	pieceID, _, ok := historyIDs(ctx, false)
	if !ok {
		return
	}
	events, err := c.service.GetHistoryByPiece(pieceID)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

func (c *HistoryController) GetHistoryEvent(ctx *gin.Context) {
	pieceID, eventID, ok := historyIDs(ctx, true)
	if !ok {
		return
	}
	event, err := c.service.GetHistoryEvent(pieceID, eventID)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

func (c *HistoryController) CreateHistoryEvent(ctx *gin.Context) {
	pieceID, _, ok := historyIDs(ctx, false)
	if !ok {
		return
	}
	var input dtos.HistoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := c.service.CreateHistoryEvent(pieceID, input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

func (c *HistoryController) UpdateHistoryEvent(ctx *gin.Context) {
	pieceID, eventID, ok := historyIDs(ctx, true)
	if !ok {
		return
	}
	var input dtos.HistoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := c.service.UpdateHistoryEvent(pieceID, eventID, input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

func (c *HistoryController) GetDeleteConfirmation(ctx *gin.Context) {
	pieceID, eventID, ok := historyIDs(ctx, true)
	if !ok {
		return
	}
	confirmation, err := c.service.GetDeleteConfirmation(pieceID, eventID)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, confirmation)
}

func (c *HistoryController) DeleteHistoryEvent(ctx *gin.Context) {
	pieceID, eventID, ok := historyIDs(ctx, true)
	if !ok {
		return
	}
	if err := c.service.DeleteHistoryEvent(pieceID, eventID); err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Evento excluído com sucesso"})
}

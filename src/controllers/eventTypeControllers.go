package controllers

import (
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

type EventTypeController struct {
	service *services.EventTypeService
	errs    *ErrorResponder
}

func NewEventTypeController(service *services.EventTypeService, errs *ErrorResponder) *EventTypeController {
	return &EventTypeController{service: service, errs: errs}
}

func (c *EventTypeController) GetAllEventTypes(ctx *gin.Context) {
	items, err := c.service.GetAllEventTypes()
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *EventTypeController) GetEventTypeByID(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	item, err := c.service.GetEventTypeByID(id)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *EventTypeController) CreateEventType(ctx *gin.Context) {
	var input dtos.EventTypeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.CreateEventType(input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

func (c *EventTypeController) UpdateEventType(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var input dtos.EventTypeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.UpdateEventType(id, input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// GetDeleteConfirmation counts the history events removed along with the type.
func (c *EventTypeController) GetDeleteConfirmation(ctx *gin.Context) {
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

func (c *EventTypeController) DeleteEventType(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteEventType(id); err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Tipo de evento excluído com sucesso"})
}

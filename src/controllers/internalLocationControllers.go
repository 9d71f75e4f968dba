package controllers

import (
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

type InternalLocationController struct {
	service *services.InternalLocationService
	errs    *ErrorResponder
}

func NewInternalLocationController(service *services.InternalLocationService, errs *ErrorResponder) *InternalLocationController {
	return &InternalLocationController{service: service, errs: errs}
}

func (c *InternalLocationController) GetAllLocations(ctx *gin.Context) {
	items, err := c.service.GetAllLocations()
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *InternalLocationController) GetLocationByID(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	item, err := c.service.GetLocationByID(id)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *InternalLocationController) CreateLocation(ctx *gin.Context) {
	var input dtos.LabelInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.CreateLocation(input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

func (c *InternalLocationController) UpdateLocation(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var input dtos.LabelInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.UpdateLocation(id, input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *InternalLocationController) GetDeleteConfirmation(ctx *gin.Context) {
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

func (c *InternalLocationController) DeleteLocation(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteLocation(id); err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Localização excluída com sucesso"})
}

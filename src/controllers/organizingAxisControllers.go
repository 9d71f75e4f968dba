package controllers

import (
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

type OrganizingAxisController struct {
	service *services.OrganizingAxisService
	errs    *ErrorResponder
}

func NewOrganizingAxisController(service *services.OrganizingAxisService, errs *ErrorResponder) *OrganizingAxisController {
	return &OrganizingAxisController{service: service, errs: errs}
}

func (c *OrganizingAxisController) GetAllAxes(ctx *gin.Context) {
	items, err := c.service.GetAllAxes()
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *OrganizingAxisController) GetAxisByID(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	item, err := c.service.GetAxisByID(id)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *OrganizingAxisController) CreateAxis(ctx *gin.Context) {
	var input dtos.LabelInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.CreateAxis(input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

func (c *OrganizingAxisController) UpdateAxis(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var input dtos.LabelInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.UpdateAxis(id, input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *OrganizingAxisController) GetDeleteConfirmation(ctx *gin.Context) {
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

func (c *OrganizingAxisController) DeleteAxis(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteAxis(id); err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Eixo excluído com sucesso"})
}

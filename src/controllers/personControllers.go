package controllers

import (
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

type PersonController struct {
	service *services.PersonService
	errs    *ErrorResponder
}

func NewPersonController(service *services.PersonService, errs *ErrorResponder) *PersonController {
	return &PersonController{service: service, errs: errs}
}

func (c *PersonController) GetAllPersons(ctx *gin.Context) {
	items, err := c.service.GetAllPersons()
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *PersonController) GetPersonByID(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	item, err := c.service.GetPersonByID(id)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *PersonController) CreatePerson(ctx *gin.Context) {
	var input dtos.PersonInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.CreatePerson(input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

func (c *PersonController) UpdatePerson(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var input dtos.PersonInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.UpdatePerson(id, input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// GetDeleteConfirmation reports the pieces the person will be detached from.
func (c *PersonController) GetDeleteConfirmation(ctx *gin.Context) {
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

func (c *PersonController) DeletePerson(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeletePerson(id); err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Pessoa excluída com sucesso"})
}

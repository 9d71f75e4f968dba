package controllers

import (
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

type ExhibitionController struct {
	service *services.ExhibitionService
	errs    *ErrorResponder
}

func NewExhibitionController(service *services.ExhibitionService, errs *ErrorResponder) *ExhibitionController {
	return &ExhibitionController{service: service, errs: errs}
}

// GetAllExhibitions lists exhibitions with their display titles, newest first.
func (c *ExhibitionController) GetAllExhibitions(ctx *gin.Context) {
	items, err := c.service.GetAllExhibitions()
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	out := make([]dtos.ExhibitionDTO, 0, len(items))
	for _, e := range items {
		out = append(out, dtos.NewExhibitionDTO(e))
	}
	ctx.JSON(http.StatusOK, out)
}

func (c *ExhibitionController) GetExhibitionByID(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	item, err := c.service.GetExhibitionByID(id)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewExhibitionDTO(*item))
}

func (c *ExhibitionController) CreateExhibition(ctx *gin.Context) {
	var input dtos.ExhibitionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.CreateExhibition(input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dtos.NewExhibitionDTO(*item))
}

func (c *ExhibitionController) UpdateExhibition(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var input dtos.ExhibitionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := c.service.UpdateExhibition(id, input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewExhibitionDTO(*item))
}

func (c *ExhibitionController) GetDeleteConfirmation(ctx *gin.Context) {
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

func (c *ExhibitionController) DeleteExhibition(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteExhibition(id); err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Exposição excluída com sucesso"})
}

package controllers

import (
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

type FormController struct {
	service *services.FormService
	errs    *ErrorResponder
}

func NewFormController(service *services.FormService, errs *ErrorResponder) *FormController {
	return &FormController{service: service, errs: errs}
}

// GetFormSchema returns the unbound form with its current choices.
func (c *FormController) GetFormSchema(ctx *gin.Context) {
	form, err := c.service.Schema(ctx.Param("nome"), nil, nil)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, form)
}

package controllers

import (
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

type SystemConfigController struct {
	service *services.SystemConfigService
	errs    *ErrorResponder
}

func NewSystemConfigController(service *services.SystemConfigService, errs *ErrorResponder) *SystemConfigController {
	return &SystemConfigController{service: service, errs: errs}
}

func (c *SystemConfigController) GetConfig(ctx *gin.Context) {
	cfg, err := c.service.GetConfig()
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewSystemConfigDTO(*cfg))
}

func (c *SystemConfigController) UpdateConfig(ctx *gin.Context) {
	var input dtos.SystemConfigInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := c.service.UpdateConfig(input)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewSystemConfigDTO(*cfg))
}

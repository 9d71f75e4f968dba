package controllers

import (
	"net/http"

	"github.com/ACORDE/memorial-acervo/src/catalog"
	"github.com/ACORDE/memorial-acervo/src/config"
	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

// CatalogController serves the public memorial pages.
type CatalogController struct {
	service *services.CatalogService
	errs    *ErrorResponder
	links   MediaLinks
	site    config.SiteConfig
}

func NewCatalogController(service *services.CatalogService, errs *ErrorResponder, links MediaLinks, site config.SiteConfig) *CatalogController {
	return &CatalogController{service: service, errs: errs, links: links, site: site}
}

func (c *CatalogController) GetCatalog(ctx *gin.Context) {
	query := catalog.ParseQuery(ctx.Query("tipo"), ctx.Query("exposicao"), ctx.Query("q"))
	result, err := c.service.GetCatalog(query)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewCatalogDTO(*result, c.links.Builder(ctx.Request)))
}

func (c *CatalogController) GetPublishedPiece(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	piece, err := c.service.GetPublishedPiece(id)
	if err != nil {
		c.errs.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewPublicPiece(*piece, c.links.Builder(ctx.Request)))
}

// GetSite returns the titles the administration front-end displays.
func (c *CatalogController) GetSite(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.site)
}

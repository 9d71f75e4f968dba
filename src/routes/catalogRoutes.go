package routes

import (
	"strings"

	"github.com/ACORDE/memorial-acervo/src/config"
	"github.com/ACORDE/memorial-acervo/src/controllers"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers the public routes: site titles, the memorial
// catalog and stored media files.
func SetupCatalogRoutes(router *gin.Engine, service *services.CatalogService, errs *controllers.ErrorResponder, links controllers.MediaLinks, site config.SiteConfig, mediaRoot string) {
	controller := controllers.NewCatalogController(service, errs, links, site)

	router.GET("/", controller.GetSite)
	router.GET("/memorial", controller.GetCatalog)
	router.GET("/memorial/peca/:id", controller.GetPublishedPiece)
	router.Static(mediaPrefix(links.MediaURL), mediaRoot)
}

// mediaPrefix turns MEDIA_URL into a router path. Absolute URLs fall back to
// /media since files are then served by another host.
func mediaPrefix(mediaURL string) string {
	p := strings.TrimRight(mediaURL, "/")
	if p == "" || !strings.HasPrefix(p, "/") {
		return "/media"
	}
	return p
}

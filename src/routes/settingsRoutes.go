package routes

import (
	"github.com/ACORDE/memorial-acervo/src/controllers"
	"github.com/ACORDE/memorial-acervo/src/middleware"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

// SettingsServices groups the services behind the reference data routes.
type SettingsServices struct {
	Persons      *services.PersonService
	Exhibitions  *services.ExhibitionService
	Axes         *services.OrganizingAxisService
	Locations    *services.InternalLocationService
	EventTypes   *services.EventTypeService
	SystemConfig *services.SystemConfigService
	Forms        *services.FormService
}

func SetupSettingsRoutes(router *gin.Engine, secret string, svc SettingsServices, errs *controllers.ErrorResponder) {
	auth := middleware.AuthMiddleware(secret)

	persons := controllers.NewPersonController(svc.Persons, errs)
	group := router.Group("/pessoas")
	group.Use(auth)
	{
		group.GET("", persons.GetAllPersons)
		group.POST("", persons.CreatePerson)
		group.GET("/:id", persons.GetPersonByID)
		group.PUT("/:id", persons.UpdatePerson)
		group.DELETE("/:id", persons.DeletePerson)
		group.GET("/:id/excluir", persons.GetDeleteConfirmation)
	}

	exhibitions := controllers.NewExhibitionController(svc.Exhibitions, errs)
	group = router.Group("/exposicoes")
	group.Use(auth)
	{
		group.GET("", exhibitions.GetAllExhibitions)
		group.POST("", exhibitions.CreateExhibition)
		group.GET("/:id", exhibitions.GetExhibitionByID)
		group.PUT("/:id", exhibitions.UpdateExhibition)
		group.DELETE("/:id", exhibitions.DeleteExhibition)
		group.GET("/:id/excluir", exhibitions.GetDeleteConfirmation)
	}

	axes := controllers.NewOrganizingAxisController(svc.Axes, errs)
	group = router.Group("/configuracoes/eixos")
	group.Use(auth)
	{
		group.GET("", axes.GetAllAxes)
		group.POST("", axes.CreateAxis)
		group.GET("/:id", axes.GetAxisByID)
		group.PUT("/:id", axes.UpdateAxis)
		group.DELETE("/:id", axes.DeleteAxis)
		group.GET("/:id/excluir", axes.GetDeleteConfirmation)
	}

	locations := controllers.NewInternalLocationController(svc.Locations, errs)
	group = router.Group("/configuracoes/locais-internos")
	group.Use(auth)
	{
		group.GET("", locations.GetAllLocations)
		group.POST("", locations.CreateLocation)
		group.GET("/:id", locations.GetLocationByID)
		group.PUT("/:id", locations.UpdateLocation)
		group.DELETE("/:id", locations.DeleteLocation)
		group.GET("/:id/excluir", locations.GetDeleteConfirmation)
	}

	eventTypes := controllers.NewEventTypeController(svc.EventTypes, errs)
	group = router.Group("/configuracoes/tipos-evento")
	group.Use(auth)
	{
		group.GET("", eventTypes.GetAllEventTypes)
		group.POST("", eventTypes.CreateEventType)
		group.GET("/:id", eventTypes.GetEventTypeByID)
		group.PUT("/:id", eventTypes.UpdateEventType)
		group.DELETE("/:id", eventTypes.DeleteEventType)
		group.GET("/:id/excluir", eventTypes.GetDeleteConfirmation)
	}

	systemConfig := controllers.NewSystemConfigController(svc.SystemConfig, errs)
	group = router.Group("/configuracoes/sistema")
	group.Use(auth, middleware.RequireSettingsAccess())
	{
		group.GET("", systemConfig.GetConfig)
		group.PUT("", systemConfig.UpdateConfig)
	}

	forms := controllers.NewFormController(svc.Forms, errs)
	router.GET("/formularios/:nome", auth, forms.GetFormSchema)
}

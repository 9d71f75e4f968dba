package routes

import (
	"github.com/ACORDE/memorial-acervo/src/controllers"
	"github.com/ACORDE/memorial-acervo/src/middleware"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, secret string, service *services.UserService, errs *controllers.ErrorResponder) {
	controller := controllers.NewUserController(service, errs)

	// Public routes
	router.POST("/login", controller.AuthenticateUser)

	// Superusers and unrestricted staff only
	users := router.Group("/usuarios")
	users.Use(middleware.AuthMiddleware(secret), middleware.RequireSettingsAccess())
	{
		users.GET("", controller.GetAllUsers)
		users.POST("", controller.CreateUser)
		users.DELETE("/:id", controller.DeleteUser)
	}
}

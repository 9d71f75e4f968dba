package main

import (
	"fmt"
	"os"

	"github.com/ACORDE/memorial-acervo/src/captioning"
	"github.com/ACORDE/memorial-acervo/src/config"
	"github.com/ACORDE/memorial-acervo/src/controllers"
	"github.com/ACORDE/memorial-acervo/src/db"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/middleware"
	"github.com/ACORDE/memorial-acervo/src/routes"
	"github.com/ACORDE/memorial-acervo/src/seed"
	"github.com/ACORDE/memorial-acervo/src/services"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	// Database connection
	database, err := db.Connect(cfg, log)
	if err != nil {
		log.Fatal("error connecting to database", "error", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatal("error during auto-migration", "error", err)
	}
	if err := seed.Seed(database, cfg, log); err != nil {
		log.Fatal("error seeding database", "error", err)
	}

	// Services setup
	store := storage.NewLocalStore(cfg.MediaRoot)
	fetcher := storage.NewDriveFetcher(cfg.Drive, log)
	describer := captioning.NewClient(cfg.Caption, log)

	formService := services.NewFormService(database)
	systemConfigService := services.NewSystemConfigService(database)
	mediaService := services.NewMediaService(database, store, fetcher, log)
	pieceService := services.NewPieceService(database, store, mediaService, log)
	descriptionService := services.NewDescriptionService(database, systemConfigService, mediaService, store, describer, log)
	userService := services.NewUserService(database, cfg.JWTSecret, cfg.TokenTTL)

	// Gin router setup
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.SetupCORS(cfg.CORSOrigins),
		middleware.SanitizeJSONInput(),
	)

	errs := controllers.NewErrorResponder(formService, log)
	links := controllers.MediaLinks{MediaURL: cfg.MediaURL, SiteBaseURL: cfg.SiteBaseURL}

	// Routes setup
	routes.SetupUserRoutes(router, cfg.JWTSecret, userService, errs)
	routes.SetupPieceRoutes(router, cfg.JWTSecret, routes.PieceServices{
		Pieces:      pieceService,
		Media:       mediaService,
		Description: descriptionService,
		History:     services.NewHistoryService(database),
		Store:       store,
	}, errs, links)
	routes.SetupSettingsRoutes(router, cfg.JWTSecret, routes.SettingsServices{
		Persons:      services.NewPersonService(database),
		Exhibitions:  services.NewExhibitionService(database),
		Axes:         services.NewOrganizingAxisService(database),
		Locations:    services.NewInternalLocationService(database),
		EventTypes:   services.NewEventTypeService(database),
		SystemConfig: systemConfigService,
		Forms:        formService,
	}, errs)
	routes.SetupCatalogRoutes(router, services.NewCatalogService(database), errs, links, cfg.Site, cfg.MediaRoot)

	// Server run
	log.Info("server starting", "host", cfg.ServerHost, "drive_enabled", fetcher.Enabled())
	if err := router.Run(cfg.ServerHost); err != nil {
		log.Fatal("error starting server", "host", cfg.ServerHost, "error", err)
	}
}

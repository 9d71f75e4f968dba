package db

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ACORDE/memorial-acervo/src/config"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the database for the given driver ("postgres" or "sqlite").
func Open(driver, dsn string) (*gorm.DB, error) {
	return open(driver, dsn, os.Stdout)
}

func open(driver, dsn string, out io.Writer) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(out),
	})
}

// newGormLogger reports slow queries and errors. Lookup misses are answered
// as 404s and are not logged.
func newGormLogger(out io.Writer) gormlogger.Interface {
	return gormlogger.New(
		log.New(out, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func Connect(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	database, err := Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Error("database connection failed", "driver", cfg.DBDriver, "error", err)
		return nil, err
	}
	log.Info("database connected", "driver", cfg.DBDriver)
	return database, nil
}

// Migrate creates or updates every table of the collection.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.UserModel{},
		&models.PersonModel{},
		&models.OrganizingAxisModel{},
		&models.ExhibitionModel{},
		&models.InternalLocationModel{},
		&models.EventTypeModel{},
		&models.CollectionPieceModel{},
		&models.MediaModel{},
		&models.HistoryEventModel{},
		&models.SystemConfigModel{},
	)
}

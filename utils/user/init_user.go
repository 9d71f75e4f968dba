// Command init_user creates a superuser or resets the password of an
// existing one.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ACORDE/memorial-acervo/src/config"
	"github.com/ACORDE/memorial-acervo/src/db"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	username := flag.String("username", cfg.AdminUsername, "superuser name")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "superuser password")
	flag.Parse()
	if *password == "" {
		fmt.Fprintln(os.Stderr, "informe a senha com -password ou ADMIN_PASSWORD")
		os.Exit(2)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	database, err := db.Connect(cfg, log)
	if err != nil {
		log.Fatal("failed to connect database", "error", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatal("failed to migrate", "error", err)
	}

	users := services.NewUserService(database, cfg.JWTSecret, cfg.TokenTTL)
	user, created, err := users.EnsureSuperuser(*username, *password)
	if err != nil {
		log.Fatal("failed to save superuser", "username", *username, "error", err)
	}
	if created {
		log.Info("superuser created", "username", user.Username)
	} else {
		log.Info("superuser updated", "username", user.Username)
	}
	log.Info("members of the restricted group cannot open the settings", "group", cfg.RestrictedGroup)
}

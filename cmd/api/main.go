package main

import (
	"context"
	"log"

	"leadhub/internal/config"
	"leadhub/internal/container"
	"leadhub/internal/migration"
	"leadhub/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown(context.Background())

	if appConfig.Database.URL != "" {
		db, err := sqlx.Connect("postgres", appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := migration.NewRunner().Run(context.Background(), db); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		if err := appContainer.InitWithDatabase(db); err != nil {
			log.Fatalf("Failed to initialize container: %v", err)
		}
	} else {
		log.Println("DATABASE_URL not set, running standalone")
		if err := appContainer.InitStandalone(); err != nil {
			log.Fatalf("Failed to initialize container: %v", err)
		}
	}

	app := ui.NewApp(appConfig, appContainer.Auth, appContainer.Processor, appContainer.Verifier)
	log.Fatal(app.Start(":" + appConfig.Server.Port))
}

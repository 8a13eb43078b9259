package container

import (
	"context"
	"fmt"
	"log"

	"leadhub/adapters/jsonl"
	"leadhub/adapters/pdftext"
	"leadhub/adapters/postgres"
	"leadhub/adapters/tabular"
	"leadhub/internal/auth"
	"leadhub/internal/classify"
	"leadhub/internal/cleanse"
	"leadhub/internal/config"
	"leadhub/internal/intake"
	"leadhub/internal/statement"
	"leadhub/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their
// lifecycle. Repositories come from Postgres when a database is
// configured and from file/memory adapters otherwise; the services on
// top don't know the difference.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	RunRepo     ports.RunRepository
	MappingRepo ports.MappingRepository
	SessionRepo ports.SessionRepository

	// Services
	Auth      *auth.Service
	Processor *intake.Processor
	Verifier  *statement.Service
}

// New creates a new dependency injection container.
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// InitWithDatabase wires Postgres-backed repositories then the services.
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.DB = db
	c.RunRepo = postgres.NewRunRepository(db)
	c.MappingRepo = postgres.NewMappingRepository(db)
	c.SessionRepo = postgres.NewSessionRepository(db)

	c.initServices()
	log.Printf("[Container] Initialized with Postgres repositories")
	return nil
}

// InitStandalone wires the DB-less adapters: in-memory runs and
// sessions, the append-only JSONL mapping log.
func (c *Container) InitStandalone() error {
	c.RunRepo = jsonl.NewMemoryRunRepository()
	c.MappingRepo = jsonl.NewMappingLog(c.Config.Storage.MappingLog)
	c.SessionRepo = auth.NewMemorySessionRepository()

	c.initServices()
	log.Printf("[Container] Initialized standalone (no database)")
	return nil
}

func (c *Container) initServices() {
	c.Auth = auth.NewService(c.Config.Auth, c.SessionRepo)

	classifyConfig := classify.DefaultConfig()
	classifyConfig.SampleSize = c.Config.Intake.SampleSize

	cleanseConfig := cleanse.DefaultConfig()
	cleanseConfig.PhoneSlots = c.Config.Intake.PhoneSlots
	cleanseConfig.EmailSlots = c.Config.Intake.EmailSlots

	c.Processor = intake.NewProcessor(
		tabular.NewReader(),
		tabular.NewWriter(),
		classify.New(classifyConfig),
		cleanse.New(cleanseConfig),
		c.RunRepo,
		c.MappingRepo,
		intake.NewFileStorage(c.Config.Storage.UploadDir),
		intake.NewFileStorage(c.Config.Storage.CleanedDir),
	)

	c.Verifier = statement.NewService(
		pdftext.NewExtractor(),
		statement.ParserConfig{DefaultYear: c.Config.Statement.DefaultYear},
	)
}

// Shutdown releases container resources.
func (c *Container) Shutdown(ctx context.Context) {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("[Container] Error closing database: %v", err)
		}
	}
}

package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"docchat-backend/internal/chat"
	"docchat-backend/internal/documents"
	"docchat-backend/internal/llm"
	"docchat-backend/internal/llm/groq"
	"docchat-backend/internal/shared/config"
	"docchat-backend/internal/shared/server"
	"docchat-backend/internal/shared/storage/db"
	"docchat-backend/internal/shared/storage/files"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Files             *files.Store
	DocumentsRepo     documents.DocumentsRepo
	ConversationsRepo chat.ConversationsRepo
	DocumentsService  *documents.Service
	ChatService       *chat.Service
	DocumentsHandler  *documents.Handler
	ChatHandler       *chat.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Files:  files.New(cfg.UploadDir),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		DocumentsHandler: app.DocumentsHandler,
		ChatHandler:      app.ChatHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) error {
	var docRepo documents.DocumentsRepo
	var convRepo chat.ConversationsRepo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		convRepo = &chat.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		convRepo = chat.NewMemoryRepo()
	}

	docSvc := &documents.Service{Files: app.Files, Repo: docRepo}
	if app.DB == nil {
		// No foreign key cascade without Postgres.
		docSvc.Sweeper = convRepo
	}

	llmClient, err := buildLLMClient(app.Config)
	if err != nil {
		return err
	}

	chatSvc := &chat.Service{
		Docs:         docRepo,
		Repo:         convRepo,
		Answerer:     &llm.Router{Client: llmClient},
		ContextChars: app.Config.ContextBudgetChars,
	}

	app.DocumentsRepo = docRepo
	app.ConversationsRepo = convRepo
	app.DocumentsService = docSvc
	app.ChatService = chatSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.ChatHandler = chat.NewHandler(chatSvc)

	return nil
}

func buildLLMClient(cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GroqAPIKey) == "" {
		log.Printf("bootstrap: GROQ_API_KEY empty; using keyword answerer")
		return llm.KeywordClient{}, nil
	}
	return groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

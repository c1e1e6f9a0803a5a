package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"cvscore-backend/internal/analyses"
	"cvscore-backend/internal/documents"
	"cvscore-backend/internal/engine"
	"cvscore-backend/internal/shared/config"
	"cvscore-backend/internal/shared/server"
	"cvscore-backend/internal/shared/storage/db"
	"cvscore-backend/internal/shared/storage/object"
	localstore "cvscore-backend/internal/shared/storage/object/local"
	s3store "cvscore-backend/internal/shared/storage/object/s3"
	"cvscore-backend/internal/usage"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	Analyzer *engine.Analyzer

	DocumentsRepo documents.DocumentsRepo
	AnalysesRepo  analyses.Repo

	DocumentsService *documents.Service
	UsageService     *usage.Service
	AnalysesService  *analyses.Service

	DocumentsHandler *documents.Handler
	AnalysisHandler  *analyses.Handler
	UsageHandler     *usage.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Store:    store,
		Analyzer: analyzer,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		DocumentHandler: app.DocumentsHandler,
		AnalysisHandler: app.AnalysisHandler,
		UsageHandler:    app.UsageHandler,
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
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildAnalyzer loads the taxonomy override when configured, otherwise the
// embedded default.
func buildAnalyzer(cfg config.Config) (*engine.Analyzer, error) {
	if strings.TrimSpace(cfg.TaxonomyPath) == "" {
		return engine.NewAnalyzer(engine.DefaultTaxonomy()), nil
	}
	data, err := os.ReadFile(cfg.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	tax, err := engine.LoadTaxonomy(data)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	return engine.NewAnalyzer(tax), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var docRepo documents.DocumentsRepo
	var analysisRepo analyses.Repo
	var usageSvc *usage.Service

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		analysisRepo = &analyses.PGRepo{DB: app.DB}
		usageSvc = usage.NewPostgresService(usage.NewPGStore(app.DB))
	} else {
		docRepo = documents.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
		usageSvc = usage.NewService()
	}

	docSvc := documents.NewService(docRepo, app.Store)
	analysisSvc := analyses.NewService(analysisRepo, docSvc, usageSvc, app.Analyzer)

	app.DocumentsRepo = docRepo
	app.AnalysesRepo = analysisRepo
	app.DocumentsService = docSvc
	app.UsageService = usageSvc
	app.AnalysesService = analysisSvc
	app.DocumentsHandler = documents.NewHandler(docSvc, app.Config.MaxUploadBytes)
	app.AnalysisHandler = analyses.NewHandler(analysisSvc)
	app.UsageHandler = usage.NewHandler(usageSvc)
}

package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/config"
	"jaalakam-backend/internal/domains/auth"
	infraCache "jaalakam-backend/internal/infrastructure/cache"
	"jaalakam-backend/internal/infrastructure/database"
	"jaalakam-backend/internal/infrastructure/identity"
	"jaalakam-backend/migrations"
	"jaalakam-backend/pkg/cache"

	authorHandler "jaalakam-backend/internal/domains/author/handler"
	authorRepo "jaalakam-backend/internal/domains/author/repository"
	authorService "jaalakam-backend/internal/domains/author/service"
	classifiedHandler "jaalakam-backend/internal/domains/classified/handler"
	classifiedRepo "jaalakam-backend/internal/domains/classified/repository"
	classifiedService "jaalakam-backend/internal/domains/classified/service"
	commentHandler "jaalakam-backend/internal/domains/comment/handler"
	commentRepo "jaalakam-backend/internal/domains/comment/repository"
	commentService "jaalakam-backend/internal/domains/comment/service"
	eventHandler "jaalakam-backend/internal/domains/event/handler"
	eventRepo "jaalakam-backend/internal/domains/event/repository"
	eventService "jaalakam-backend/internal/domains/event/service"
	literatureHandler "jaalakam-backend/internal/domains/literature/handler"
	literatureRepo "jaalakam-backend/internal/domains/literature/repository"
	literatureService "jaalakam-backend/internal/domains/literature/service"
	reportHandler "jaalakam-backend/internal/domains/report/handler"
	reportRepo "jaalakam-backend/internal/domains/report/repository"
	reportService "jaalakam-backend/internal/domains/report/service"
	userHandler "jaalakam-backend/internal/domains/user/handler"
	userRepo "jaalakam-backend/internal/domains/user/repository"
	userService "jaalakam-backend/internal/domains/user/service"
)

// Container holds the application's dependency graph.
// Build order: config, infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config   *config.Config
	DB       *database.PostgresDB
	Cache    cache.Cache
	Identity *identity.ClerkClient
	Resolver *auth.Resolver

	// Repositories
	UserRepo       userRepo.Repository
	AuthorRepo     authorRepo.Repository
	LiteratureRepo literatureRepo.Repository
	CommentRepo    commentRepo.Repository
	ClassifiedRepo classifiedRepo.Repository
	EventRepo      eventRepo.Repository
	ReportRepo     reportRepo.Repository

	// Services
	UserService       userService.ServiceInterface
	AuthorService     authorService.ServiceInterface
	LiteratureService literatureService.ServiceInterface
	CommentService    commentService.ServiceInterface
	ClassifiedService classifiedService.ServiceInterface
	EventService      eventService.ServiceInterface
	ReportService     reportService.ServiceInterface

	// Handlers
	UserHandler       *userHandler.UserHandler
	AuthorHandler     *authorHandler.AuthorHandler
	LiteratureHandler *literatureHandler.LiteratureHandler
	CommentHandler    *commentHandler.CommentHandler
	ClassifiedHandler *classifiedHandler.ClassifiedHandler
	EventHandler      *eventHandler.EventHandler
	ReportHandler     *reportHandler.ReportHandler
}

// NewContainer wires everything. A database failure is fatal, a Redis failure is not.
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing container")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initCache()

	if err := c.initIdentity(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	if c.Config.App.AutoMigrate {
		if err := migrations.Up(dbConfig.DSN()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Info().Msg("Database connected")
	return nil
}

func (c *Container) initCache() {
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
		c.Config.Redis.Prefix,
	)

	// Connect is not part of the cache interface
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, continuing without a warm cache")
		}
	}

	c.Cache = redisCache
}

func (c *Container) initIdentity() error {
	client, err := identity.NewClerkClient(c.Config.Identity)
	if err != nil {
		return fmt.Errorf("failed to init identity provider: %w", err)
	}
	c.Identity = client
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.LiteratureRepo = literatureRepo.NewPostgresRepository(pool, c.Cache, c.Config.Cache.LiteratureTTL)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.ClassifiedRepo = classifiedRepo.NewPostgresRepository(pool)
	c.EventRepo = eventRepo.NewPostgresRepository(pool)
	c.ReportRepo = reportRepo.NewPostgresRepository(pool)

	c.Resolver = auth.NewResolver(c.Identity, c.UserRepo)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.ReportService = reportService.NewReportService(c.ReportRepo)

	// literature creates author profiles on demand and settles reports after moderation
	c.LiteratureService = literatureService.NewLiteratureService(c.LiteratureRepo, c.AuthorRepo, c.ReportService)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.LiteratureService)

	c.ClassifiedService = classifiedService.NewClassifiedService(c.ClassifiedRepo)
	c.EventService = eventService.NewEventService(c.EventRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.LiteratureHandler = literatureHandler.NewLiteratureHandler(c.LiteratureService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.ClassifiedHandler = classifiedHandler.NewClassifiedHandler(c.ClassifiedService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.ReportHandler = reportHandler.NewReportHandler(c.ReportService)
}

// Cleanup releases pools and connections. Called on shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}
}

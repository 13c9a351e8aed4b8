package container

import (
	"context"
	"fmt"

	"turtlewax/migrator/internal/client"
	"turtlewax/migrator/internal/config"
	"turtlewax/migrator/internal/legacy"
	"turtlewax/migrator/internal/parser"
	"turtlewax/migrator/internal/repository"
	"turtlewax/migrator/internal/service"
	"turtlewax/migrator/internal/state"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.SanityClient
	Site       legacy.Site
	Ledger     state.Ledger
	Repository repository.DocumentRepository

	Service *service.Service

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized. Redis and Postgres are
// only connected when configured.
func New(ctx context.Context, cfg *config.Config, fsys afero.Fs) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	site, err := legacy.NewSite(fsys, cfg.Legacy.Root, cfg.Legacy.IndexFile)
	if err != nil {
		return nil, err
	}
	container.Site = site

	container.Ledger = state.NewMemoryLedger()
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		container.Ledger = state.NewRedisLedger(rdb, cfg.Redis.KeyPrefix)
	}

	container.Repository = repository.NewNoopRepository()
	if cfg.Database.Enabled() {
		db, err := pgxpool.New(ctx,
			fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				cfg.Database.Host,
				cfg.Database.Port,
				cfg.Database.User,
				cfg.Database.Password,
				cfg.Database.Name,
			))
		if err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		container.db = db

		repo := repository.NewDocumentRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			container.Close()
			return nil, err
		}
		log.Info("✅ Connected to Postgres successfully")
		container.Repository = repo
	}

	container.Client = client.NewSanityClient(cfg.Sanity)

	container.Service = service.NewService(
		container.Client,
		site,
		parser.NewCatalogParser(),
		container.Ledger,
		container.Repository,
		cfg.Legacy.BrochureFile,
	)

	return container, nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	if c.Client != nil {
		c.Client.Close()
	}
	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		c.redis.Close()
	}
	return nil
}

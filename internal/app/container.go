package app

import (
	"context"
	"errors"
	"log"

	"tradeaskill/internal/config"
	"tradeaskill/internal/database"
	"tradeaskill/internal/database/migration"
	dbpostgres "tradeaskill/internal/database/postgres"
	"tradeaskill/internal/infrastructure/cache"
	"tradeaskill/internal/infrastructure/kv"
	"tradeaskill/internal/infrastructure/tradeapi"
	"tradeaskill/internal/pkg/jwt"
	"tradeaskill/internal/search"
	"tradeaskill/internal/usecase/catalog"
	"tradeaskill/internal/usecase/profile"
	"tradeaskill/internal/usecase/signup"
	"tradeaskill/internal/validation"
	"tradeaskill/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	Cache *cache.Redis
	DB    database.DB
	KV    kv.Store
	Hub   *ws.Hub
	JWT   jwt.Service

	Catalog  *catalog.Source
	Browser  *catalog.Browser
	Profiles *profile.Store
	Signup   *signup.Service

	stopHub context.CancelFunc
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	c := &Container{Config: cfg, Logger: logger}

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	store, err := c.openStore(ctx)
	if err != nil {
		_ = c.Cache.Close()
		return nil, err
	}
	c.KV = store

	hubCtx, cancel := context.WithCancel(context.Background())
	c.stopHub = cancel
	c.Hub = ws.NewHub(logger)
	go c.Hub.Run(hubCtx)

	c.JWT = jwt.NewHMACService(cfg.Session.Secret, cfg.Session.TTL)

	api := tradeapi.NewClient(cfg.Upstream.SkillsEndpoint, cfg.Upstream.UsersEndpoint, cfg.Upstream.Timeout, logger)
	c.Catalog = catalog.NewSource(api, c.Cache, cfg.Upstream.SkillsFallback, logger)
	c.Browser = catalog.NewBrowser(c.Catalog, search.NewEngine(cfg.App.Locale))
	c.Profiles = profile.NewStore(c.KV, c.Hub, logger, profile.WithCache(cfg.Session.ProfileCacheSize, cfg.Session.ProfileCacheTTL))

	v, err := validation.New()
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Signup = signup.NewService(v, api, c.Profiles, signup.Options{DuplicateCheck: cfg.Upstream.SignupDuplicateCheck}, logger)

	return c, nil
}

// openStore picks the key-value backend behind the profile store. A redis
// backend that cannot be reached degrades to memory rather than failing start.
func (c *Container) openStore(ctx context.Context) (kv.Store, error) {
	switch c.Config.Store.Backend {
	case config.StoreRedis:
		if !c.Cache.Available() {
			c.Logger.Printf("[Store] Redis unavailable, profiles kept in memory")
			return kv.NewMemory(), nil
		}
		c.Logger.Printf("[Store] Using redis backend prefix=%s", c.Config.Store.KeyPrefix)
		return kv.NewRedis(c.Cache.Client(), c.Config.Store.KeyPrefix), nil

	case config.StorePostgres:
		db, err := dbpostgres.Connect(ctx, c.Config.Database)
		if err != nil {
			return nil, err
		}
		applied, err := migration.Default().Run(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		c.DB = db
		c.Logger.Printf("[Store] Using postgres backend db=%s migrations_applied=%d", c.Config.Database.DBName, applied)
		return kv.NewPostgres(db), nil

	default:
		c.Logger.Printf("[Store] Using in-memory backend")
		return kv.NewMemory(), nil
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}

	var errs []error
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	return errors.Join(errs...)
}

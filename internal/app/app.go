// Package app assembles the registry from configuration.
package app

import (
	"context"
	"fmt"

	"pst-registry/config"
	"pst-registry/internal/adapter/cache"
	httpHandler "pst-registry/internal/adapter/http/handler"
	"pst-registry/internal/adapter/metrics"
	"pst-registry/internal/adapter/storage/memory"
	pgStorage "pst-registry/internal/adapter/storage/postgres"
	redisStorage "pst-registry/internal/adapter/storage/redis"
	"pst-registry/internal/core/ports"
	"pst-registry/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const memoryAuditCapacity = 10000

// App is a fully wired registry.
type App struct {
	Router  *gin.Engine
	Metrics *metrics.Metrics

	Tokens     ports.TokenDirectory
	Catalog    ports.ServiceCatalog
	Engine     ports.EligibilityEngine
	Ledger     ports.BuyerLedger
	Evaluator  ports.EligibilityEvaluator
	Identities ports.IdentityDirectory

	closers []func()
}

// Close releases database and cache connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

type options struct {
	hashParams service.Argon2Params
	registry   *prometheus.Registry
}

// Option customises Build.
type Option func(*options)

// WithHashParams overrides the Argon2id cost. Tests use a cheap setting.
func WithHashParams(p service.Argon2Params) Option {
	return func(o *options) { o.hashParams = p }
}

// WithRegistry registers metrics on reg instead of a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

type stores struct {
	tokens     ports.TokenRepository
	categories ports.CategoryRepository
	services   ports.ServiceAssignmentRepository
	rules      ports.SuitabilityRuleRepository
	bans       ports.CountryBanRepository
	buyers     ports.BuyerRepository
	accounts   ports.AccountRepository
	audit      ports.AuditRepository
	transactor ports.DBTransactor
	health     []ports.HealthChecker
}

// Build connects the configured stores and wires services and routes.
// On error every connection opened so far is closed.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...Option) (_ *App, err error) {
	o := options{hashParams: service.DefaultArgon2Params()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
		o.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	a := &App{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	var rdb *goredis.Client
	var redisRoles []redisStorage.Role
	if cfg.Redis.Enabled {
		if cfg.Storage.Identity == config.DriverRedis {
			redisRoles = append(redisRoles, redisStorage.RoleIdentity)
		}
		if cfg.RateLimit.Enabled {
			redisRoles = append(redisRoles, redisStorage.RoleRateLimit)
		}
		rdb, err = redisStorage.NewClient(ctx, cfg.Redis, log, redisRoles...)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
	}

	var st *stores
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		st, err = a.postgresStores(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
	case config.DriverMemory, "":
		st = memoryStores()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	switch cfg.Storage.Identity {
	case config.DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("identity store redis requires redis.enabled")
		}
		st.accounts = redisStorage.NewAccountStore(rdb)
	case config.DriverPostgres:
		if st.accounts == nil {
			return nil, fmt.Errorf("identity store postgres requires the postgres driver")
		}
	default:
		st.accounts = memory.NewAccountRepo()
	}

	if rdb != nil {
		st.health = append(st.health, redisStorage.NewHealthCheck(rdb, redisRoles...))
	}
	if cfg.Cache.TokenTTL > 0 {
		st.tokens = cache.NewTokenCache(st.tokens, cfg.Cache.TokenTTL)
	}

	var limiter ports.RateLimitStore
	if cfg.RateLimit.Enabled {
		if rdb != nil {
			limiter = redisStorage.NewRateLimitStore(rdb)
		} else {
			limiter = cache.NewRateLimitStore()
		}
	}

	a.Metrics = metrics.New(o.registry)

	hashSvc := service.NewArgon2HashService(o.hashParams)
	accessTokens := service.NewJWTAccessTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	a.Tokens = service.NewTokenDirectory(st.tokens, st.transactor, log)
	a.Catalog = service.NewServiceCatalog(st.tokens, st.categories, st.services, st.transactor, log)
	a.Engine = service.NewEligibilityEngine(st.tokens, st.rules, st.bans, st.transactor, log)
	a.Ledger = service.NewBuyerLedger(st.buyers, st.tokens, st.services, st.transactor, log)
	a.Evaluator = service.NewEligibilityEvaluator(st.rules, st.bans, st.buyers, a.Metrics, log)
	a.Identities = service.NewIdentityDirectory(st.accounts, hashSvc, accessTokens, log)

	a.Router = httpHandler.SetupRouter(httpHandler.RouterDeps{
		Identities:     a.Identities,
		Tokens:         a.Tokens,
		Catalog:        a.Catalog,
		Engine:         a.Engine,
		Evaluator:      a.Evaluator,
		Ledger:         a.Ledger,
		AccessTokens:   accessTokens,
		RateLimitStore: limiter,
		Metrics:        a.Metrics,
		AuditSvc:       service.NewAuditService(st.audit, log),
		HealthCheckers: st.health,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Logger:         log,
	})

	log.Info().
		Str("driver", cfg.Storage.Driver).
		Str("identity", cfg.Storage.Identity).
		Bool("redis", rdb != nil).
		Bool("rate_limit", limiter != nil).
		Dur("token_cache_ttl", cfg.Cache.TokenTTL).
		Msg("registry assembled")

	return a, nil
}

func memoryStores() *stores {
	return &stores{
		tokens:     memory.NewTokenRepo(),
		categories: memory.NewCategoryRepo(),
		services:   memory.NewServiceAssignmentRepo(),
		rules:      memory.NewSuitabilityRuleRepo(),
		bans:       memory.NewCountryBanRepo(),
		buyers:     memory.NewBuyerRepo(),
		audit:      memory.NewAuditRepo(memoryAuditCapacity),
		transactor: memory.NewTransactor(),
	}
}

func (a *App) postgresStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		return nil, fmt.Errorf("init encryption: %w", err)
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	a.closers = append(a.closers, pool.Close)

	if cfg.Storage.MigrateOnStart {
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			return nil, err
		}
	}

	return &stores{
		tokens:     pgStorage.NewTokenRepo(pool),
		categories: pgStorage.NewCategoryRepo(pool),
		services:   pgStorage.NewServiceAssignmentRepo(pool),
		rules:      pgStorage.NewSuitabilityRuleRepo(pool),
		bans:       pgStorage.NewCountryBanRepo(pool),
		buyers:     pgStorage.NewBuyerRepo(pool, encSvc),
		accounts:   pgStorage.NewAccountRepo(pool),
		audit:      pgStorage.NewAuditRepo(pool),
		transactor: pgStorage.NewTransactor(pool),
		health:     []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
	}, nil
}

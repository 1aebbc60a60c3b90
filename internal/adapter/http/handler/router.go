package handler

import (
	"pst-registry/internal/adapter/http/middleware"
	"pst-registry/internal/adapter/metrics"
	"pst-registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Identities     ports.IdentityDirectory
	Tokens         ports.TokenDirectory
	Catalog        ports.ServiceCatalog
	Engine         ports.EligibilityEngine
	Evaluator      ports.EligibilityEvaluator
	Ledger         ports.BuyerLedger
	AccessTokens   ports.AccessTokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	Metrics        *metrics.Metrics   // nil = no /metrics endpoint
	AuditSvc       ports.AuditService // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(maxBody))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.DefaultRateLimitRules()
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger, deps.Metrics)
	}
	read := rl(middleware.GroupRead)
	write := rl(middleware.GroupWrite)
	jwtAuth := middleware.JWTAuth(deps.AccessTokens, deps.Logger)

	v1 := r.Group("/api/v1")

	// --- Identity (public) ---
	identityHandler := NewIdentityHandler(deps.Identities)
	v1.POST("/identities", rl(middleware.GroupIdentityRegister), identityHandler.RegisterAccount)
	v1.GET("/identities/:account", read, identityHandler.GetIdentity)
	v1.POST("/auth/token", rl(middleware.GroupAuthToken), identityHandler.Login)

	// --- Tokens: reads are public, writes need a bearer token ---
	tokenHandler := NewTokenHandler(deps.Tokens)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	eligibilityHandler := NewEligibilityHandler(deps.Engine, deps.Evaluator)

	v1.POST("/tokens", jwtAuth, write, tokenHandler.AppointToken)
	tokens := v1.Group("/tokens/:address")
	{
		tokens.GET("", read, tokenHandler.GetToken)

		tokens.GET("/categories", read, catalogHandler.ListCategories)
		tokens.GET("/categories/:tag", read, catalogHandler.GetCategory)
		tokens.PUT("/categories/:tag", jwtAuth, write, catalogHandler.AddCategory)

		tokens.GET("/services", read, catalogHandler.ListServices)
		tokens.GET("/services/:service_id", read, catalogHandler.GetService)
		tokens.PUT("/services/:service_id", jwtAuth, write, catalogHandler.AddService)
		tokens.DELETE("/services/:service_id", jwtAuth, write, catalogHandler.RemoveService)

		tokens.GET("/rules", read, eligibilityHandler.GetRule)
		tokens.PUT("/rules", jwtAuth, write, eligibilityHandler.AssignRule)

		tokens.GET("/bans/:country", read, eligibilityHandler.GetCountryBan)
		tokens.PUT("/bans/:country", jwtAuth, write, eligibilityHandler.AddCountryBan)
		tokens.DELETE("/bans/:country", jwtAuth, write, eligibilityHandler.LiftCountryBan)

		tokens.GET("/eligibility/:ein", read, eligibilityHandler.Evaluate)
	}

	// --- Buyers ---
	buyerHandler := NewBuyerHandler(deps.Ledger)
	v1.POST("/buyers", jwtAuth, write, buyerHandler.AddBuyer)
	buyers := v1.Group("/buyers/:ein")
	{
		buyers.GET("", read, buyerHandler.GetBuyer)
		buyers.PUT("/investor-status", jwtAuth, write, buyerHandler.SetInvestorStatus)
		buyers.POST("/compliance/:kind", jwtAuth, write, buyerHandler.AttachCompliance)
	}

	return r
}

package handler

import (
	"bank-ledger/internal/adapter/http/middleware"
	redisStore "bank-ledger/internal/adapter/storage/redis"
	"bank-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CustomerSvc    ports.CustomerService
	LedgerSvc      ports.LedgerService
	RateLimiter    *redisStore.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if a limiter is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	customerHandler := NewCustomerHandler(deps.CustomerSvc)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)

	v1.POST("/customers", rl("customers"), customerHandler.Register)

	accounts := v1.Group("/accounts")
	{
		accounts.POST("", rl("accounts"), customerHandler.OpenAccount)
		accounts.GET("", rl("accounts"), ledgerHandler.ListAccounts)
		accounts.POST("/:number/deposits", rl("movements"), ledgerHandler.Deposit)
		accounts.POST("/:number/withdrawals", rl("movements"), ledgerHandler.Withdraw)
		accounts.GET("/:number/statement", rl("statement"), ledgerHandler.Statement)
	}

	return r
}

package handler

import (
	"bank-backoffice/internal/adapter/http/middleware"
	"bank-backoffice/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxRequestBody = 1 << 20 // 1 MB

// AccountRouterDeps holds the dependencies of the account-service router.
type AccountRouterDeps struct {
	AccountSvc     ports.AccountService
	LedgerSvc      ports.LedgerService
	ReportSvc      ports.ReportService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupAccountRouter initialises the Gin engine for the account service.
func SetupAccountRouter(deps AccountRouterDeps) *gin.Engine {
	r := newEngine(deps.Logger)

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.AccountSvc)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("", accountHandler.Create)
		accounts.GET("", accountHandler.ListActive)
		accounts.GET("/:id", accountHandler.GetByID)
		accounts.PATCH("/:id/status", accountHandler.SetActive)
		accounts.DELETE("/:id", accountHandler.Delete)
	}

	transactionHandler := NewTransactionHandler(deps.LedgerSvc)
	reportHandler := NewReportHandler(deps.ReportSvc)
	transactions := v1.Group("/transactions")
	{
		transactions.POST("", transactionHandler.Apply)
		transactions.GET("/:id", transactionHandler.GetByID)
		transactions.GET("/accounts/:accountId", transactionHandler.ListInRange)
		transactions.GET("/accounts/:accountId/last", transactionHandler.Last)
		transactions.GET("/clients/:clientId/report", reportHandler.Report)
	}

	return r
}

// ClientRouterDeps holds the dependencies of the client-service router.
type ClientRouterDeps struct {
	ClientSvc      ports.ClientService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupClientRouter initialises the Gin engine for the client service.
func SetupClientRouter(deps ClientRouterDeps) *gin.Engine {
	r := newEngine(deps.Logger)

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	clientHandler := NewClientHandler(deps.ClientSvc)
	clients := r.Group("/api/v1/clients")
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PUT("/:id", clientHandler.Update)
		clients.PATCH("/:id/status", clientHandler.SetActive)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	return r
}

func newEngine(log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.MaxBodySize(maxRequestBody))

	return r
}

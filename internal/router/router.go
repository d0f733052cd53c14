package router

import (
	"goldscheme/config"
	"goldscheme/internal/handler"
	"goldscheme/internal/middleware"
	"goldscheme/internal/repository"
	"goldscheme/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers and declares the route
// table. Paths are the ones the customer app and admin panel already call.
func Setup(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// both frontends are static sites served from wherever, so CORS stays open
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)))

	customerRepo := repository.NewCustomerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	ledgerSvc := service.NewLedgerService(customerRepo)
	accountingSvc := service.NewAccountingService(customerRepo, paymentRepo)

	customerHandler := handler.NewCustomerHandler(ledgerSvc, log)
	paymentHandler := handler.NewPaymentHandler(accountingSvc, log)
	summaryHandler := handler.NewSummaryHandler(accountingSvc, log)

	r.POST("/create-customer", customerHandler.Create)
	r.PUT("/update-customer", customerHandler.Update)
	r.GET("/get-customer/:phone", customerHandler.Get)
	r.GET("/customers", customerHandler.List)
	r.GET("/customers/all", customerHandler.ListFull)

	r.POST("/create-payment", paymentHandler.Create)
	r.PUT("/update-payment", paymentHandler.Update)
	r.GET("/payments", paymentHandler.List)

	r.GET("/gold_user_summary/:phone", summaryHandler.Get)
	r.GET("/gold_users_summary", summaryHandler.List)
	r.GET("/gold_user_summary_auth", summaryHandler.GetAuth)

	return r
}

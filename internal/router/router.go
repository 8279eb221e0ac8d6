// Package router wires services and handlers into the HTTP engine.
package router

import (
	"net/http"

	"coinbudget/internal/config"
	"coinbudget/internal/handlers"
	"coinbudget/internal/middleware"
	"coinbudget/internal/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New builds the gin engine with every route registered.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Initialize services
	userService := services.NewUserService(db)
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db, cfg.StrictCategories)
	reportService := services.NewReportService(db, cfg.MaxTrailingMonths)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, cfg.JWTExpirationDur)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	reportHandler := handlers.NewReportHandler(reportService, cfg.DefaultTrailingMonths)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	protected.GET("/profile", authHandler.GetProfile)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.SaveBudget)
	budgets.GET("", budgetHandler.GetBudget)
	budgets.DELETE("", budgetHandler.DeleteBudget)
	budgets.GET("/months", budgetHandler.ListBudgetMonths)

	ledgers := protected.Group("/ledgers")
	ledgers.POST("/:id/expenses", expenseHandler.AddExpense)
	ledgers.GET("/:id/expenses", expenseHandler.GetLedgerExpenses)
	ledgers.GET("/:id/summary", expenseHandler.GetMonthSummary)

	reports := protected.Group("/reports")
	reports.GET("/trailing", reportHandler.GetTrailingMonths)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

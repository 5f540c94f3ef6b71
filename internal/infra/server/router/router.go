// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/web/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/web/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	categoryController  *controller.CategoryController
	expenseController   *controller.ExpenseController
	budgetController    *controller.BudgetController
	dashboardController *controller.DashboardController
	reportController    *controller.ReportController
	loginRateLimiter    *middleware.RateLimiter
	sessionMiddleware   *middleware.SessionMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	sessionMiddleware *middleware.SessionMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		categoryController:  categoryController,
		expenseController:   expenseController,
		budgetController:    budgetController,
		dashboardController: dashboardController,
		reportController:    reportController,
		loginRateLimiter:    loginRateLimiter,
		sessionMiddleware:   sessionMiddleware,
	}
}

// Setup configures the Gin engine with all routes and middleware.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the API v1 routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/logout", r.authController.Logout)
				if r.sessionMiddleware != nil {
					auth.GET("/me", r.sessionMiddleware.Authenticate(), r.authController.Me)
				}
			}
		}

		if r.sessionMiddleware == nil {
			return
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			categories.Use(r.sessionMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.sessionMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Get)
			}
		}

		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.sessionMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.sessionMiddleware.Authenticate())
			{
				budgets.GET("/months", r.budgetController.Months)
				budgets.GET("/:year/:month", r.budgetController.GetForm)
				budgets.POST("/allocation", r.budgetController.PreviewAllocation)
				budgets.PUT("", r.budgetController.Save)
			}
		}

		if r.reportController != nil {
			reports := v1.Group("/reports")
			reports.Use(r.sessionMiddleware.Authenticate())
			{
				reports.GET("/years", r.reportController.Years)
				reports.GET("/:year/:month", r.reportController.Get)
				reports.GET("/:year/:month/export", r.reportController.Export)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/web/config"
	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/application/usecase/auth"
	"github.com/expense-tracker/web/internal/application/usecase/budget"
	"github.com/expense-tracker/web/internal/application/usecase/category"
	"github.com/expense-tracker/web/internal/application/usecase/dashboard"
	"github.com/expense-tracker/web/internal/application/usecase/expense"
	"github.com/expense-tracker/web/internal/application/usecase/report"
	"github.com/expense-tracker/web/internal/infra/server/router"
	"github.com/expense-tracker/web/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/web/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/web/internal/integration/fixture"
	"github.com/expense-tracker/web/internal/integration/remote"
	"github.com/expense-tracker/web/internal/integration/session"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Redis       *redis.Client
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// sources bundles the data-source capabilities selected by DATA_SOURCE.
type sources struct {
	expenses adapter.ExpenseSource
	budgets  adapter.BudgetSource
	auth     adapter.AuthGateway
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil clock means time.Now.
func NewInjector(cfg *config.Config, redisClient *redis.Client, clock adapter.Clock) (*Injector, error) {
	if clock == nil {
		clock = time.Now
	}

	src, err := newSources(cfg, clock)
	if err != nil {
		return nil, err
	}

	// Create session adapters
	sessionStore := session.NewRedisStore(redisClient)
	tokenInspector := session.NewTokenInspector()

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(src.auth, sessionStore, tokenInspector, clock, cfg.Session.TTL)
	registerUseCase := auth.NewRegisterUserUseCase(src.auth)
	sessionUseCase := auth.NewSessionUseCase(sessionStore, tokenInspector, clock)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(src.expenses)
	getExpenseUseCase := expense.NewGetExpenseUseCase(src.expenses)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(src.expenses)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(src.expenses)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(src.expenses)

	// Create budget use cases
	getBudgetFormUseCase := budget.NewGetBudgetFormUseCase(src.budgets, src.expenses)
	saveBudgetUseCase := budget.NewSaveBudgetUseCase(src.budgets)

	// Create view use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(src.expenses)
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(src.expenses, src.budgets, clock)
	getReportUseCase := report.NewGetReportUseCase(src.expenses, src.budgets)
	exportReportUseCase := report.NewExportReportUseCase(getReportUseCase)

	// Create controllers
	cookie := controller.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	}
	healthController := controller.NewHealthController(func(ctx context.Context) bool {
		return redisClient.Ping(ctx).Err() == nil
	}, cfg.DataSource)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		sessionUseCase,
		cookie,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		sessionUseCase,
		cookie,
	)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		getExpenseUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		sessionUseCase,
		cookie,
	)
	budgetController := controller.NewBudgetController(
		getBudgetFormUseCase,
		saveBudgetUseCase,
		clock,
		sessionUseCase,
		cookie,
	)
	dashboardController := controller.NewDashboardController(
		getDashboardUseCase,
		sessionUseCase,
		cookie,
	)
	reportController := controller.NewReportController(
		getReportUseCase,
		exportReportUseCase,
		clock,
		sessionUseCase,
		cookie,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.Window,
		cfg.RateLimit.Enabled,
		clock,
	)
	sessionMiddleware := middleware.NewSessionMiddleware(sessionUseCase, cfg.Session.CookieName)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		expenseController,
		budgetController,
		dashboardController,
		reportController,
		loginRateLimiter,
		sessionMiddleware,
	)

	return &Injector{
		Config:      cfg,
		Redis:       redisClient,
		Router:      r,
		RateLimiter: loginRateLimiter,
	}, nil
}

func newSources(cfg *config.Config, clock adapter.Clock) (*sources, error) {
	switch cfg.DataSource {
	case config.DataSourceRemote, "":
		client := remote.NewClient(cfg.RemoteAPI.BaseURL, cfg.RemoteAPI.Timeout)
		slog.Info("Using remote data source", "base_url", cfg.RemoteAPI.BaseURL)
		return &sources{
			expenses: remote.NewExpenseClient(client),
			budgets:  remote.NewBudgetClient(client),
			auth:     remote.NewAuthClient(client),
		}, nil
	case config.DataSourceFixture:
		gateway, err := fixture.NewAuthGateway(cfg.Fixture.TokenSecret, clock)
		if err != nil {
			return nil, fmt.Errorf("failed to create fixture auth gateway: %w", err)
		}
		store := fixture.NewSeeded(clock)
		slog.Info("Using fixture data source", "username", fixture.DemoUsername)
		return &sources{
			expenses: store.Expenses(),
			budgets:  store.Budgets(),
			auth:     gateway,
		}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}

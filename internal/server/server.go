package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/bds22000-prog/kyclean/internal/ai"
	"github.com/bds22000-prog/kyclean/internal/auth"
	"github.com/bds22000-prog/kyclean/internal/config"
	"github.com/bds22000-prog/kyclean/internal/handlers"
	"github.com/bds22000-prog/kyclean/internal/models"
	"github.com/bds22000-prog/kyclean/internal/notifications"
	"github.com/bds22000-prog/kyclean/internal/payroll"
	"github.com/bds22000-prog/kyclean/internal/report"
	"github.com/bds22000-prog/kyclean/internal/repository"
)

// Stores - все хранилища процесса. Создаются один раз в main и живут
// до завершения сервиса.
type Stores struct {
	Waste     *repository.WasteRepository
	Recycling *repository.RecyclingRepository
	Clients   *repository.ClientRepository
	Employees *repository.EmployeeRepository
	Payroll   *repository.PayrollRepository
	Tokens    *repository.RefreshTokenRepository
}

// NewStores создает пустой набор хранилищ.
func NewStores() Stores {
	return Stores{
		Waste:     repository.NewWasteRepository(),
		Recycling: repository.NewRecyclingRepository(),
		Clients:   repository.NewClientRepository(),
		Employees: repository.NewEmployeeRepository(),
		Payroll:   repository.NewPayrollRepository(),
		Tokens:    repository.NewRefreshTokenRepository(),
	}
}

// reportSources адаптирует хранилища к снимку исходных данных отчета.
type reportSources struct {
	stores Stores
}

func (s reportSources) Snapshot() report.Sources {
	return report.Sources{
		Waste:     s.stores.Waste.List(),
		Recycling: s.stores.Recycling.List(),
		Clients:   s.stores.Clients.List(),
		Employees: s.stores.Employees.List(),
	}
}

// New собирает HTTP-сервер Echo с роутами и зависимостями.
func New(cfg config.Config, logger *slog.Logger, stores Stores) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	notificationHub := notifications.NewHub()

	markers := report.Markers{
		City:       cfg.Report.MarkerCity,
		RouteB:     cfg.Report.MarkerRouteB,
		Commercial: cfg.Report.MarkerCommercial,
	}
	sources := reportSources{stores: stores}
	aggregator := report.NewAggregator(markers, cfg.Report.ExpenseRatio)
	reportService := report.NewService(aggregator, sources)
	payrollService := payroll.NewService(stores.Payroll, stores.Employees)

	var aiClient ai.Client
	switch strings.ToLower(cfg.AI.Provider) {
	case "gemini":
		aiClient = ai.NewGeminiClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
	default:
		aiClient = ai.NewGroqClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
	}
	aiService := ai.NewService(aiClient, logger)

	authHandler := handlers.NewAuthHandler(stores.Employees, stores.Tokens, tokenManager)
	wasteHandler := handlers.NewWasteHandler(stores.Waste, reportService, notificationHub)
	recyclingHandler := handlers.NewRecyclingHandler(stores.Recycling, reportService, notificationHub)
	clientHandler := handlers.NewClientHandler(stores.Clients, reportService, notificationHub)
	employeeHandler := handlers.NewEmployeeHandler(stores.Employees, reportService, notificationHub)
	reportHandler := handlers.NewReportHandler(reportService, notificationHub)
	payrollHandler := handlers.NewPayrollHandler(payrollService, notificationHub)
	exportHandler := handlers.NewExportHandler(reportService, payrollService)
	aiHandler := handlers.NewAIHandler(aiService, sources, markers)
	eventsHandler := handlers.NewEventsHandler(notificationHub)

	lookup := auth.EmployeeLookup(stores.Employees.Get)

	registerRoutes(
		e,
		authHandler,
		wasteHandler,
		recyclingHandler,
		clientHandler,
		employeeHandler,
		reportHandler,
		payrollHandler,
		exportHandler,
		aiHandler,
		eventsHandler,
		auth.JWTMiddleware(tokenManager),
		auth.RoleMiddleware(lookup, models.RoleAdmin, models.RoleManager),
		authRateLimiter(cfg.Auth),
		aiRateLimiter(cfg.AI),
	)

	return e
}

// NewHTTPServer создает net/http сервер с заданными таймаутами.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

func authRateLimiter(cfg config.AuthConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}

func aiRateLimiter(cfg config.AIConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}

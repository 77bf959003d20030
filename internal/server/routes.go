package server

import (
	"github.com/labstack/echo/v4"

	"github.com/bds22000-prog/kyclean/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	wasteHandler *handlers.WasteHandler,
	recyclingHandler *handlers.RecyclingHandler,
	clientHandler *handlers.ClientHandler,
	employeeHandler *handlers.EmployeeHandler,
	reportHandler *handlers.ReportHandler,
	payrollHandler *handlers.PayrollHandler,
	exportHandler *handlers.ExportHandler,
	aiHandler *handlers.AIHandler,
	eventsHandler *handlers.EventsHandler,
	authMiddleware echo.MiddlewareFunc,
	managerMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)
	authGroup.POST("/password", authHandler.ChangePassword, authMiddleware)

	waste := api.Group("/waste", authMiddleware)
	waste.GET("", wasteHandler.List)
	waste.POST("", wasteHandler.Create)
	waste.GET("/:id", wasteHandler.Get)
	waste.PUT("/:id", wasteHandler.Update)
	waste.DELETE("/:id", wasteHandler.Delete)

	recycling := api.Group("/recycling", authMiddleware)
	recycling.GET("", recyclingHandler.List)
	recycling.POST("", recyclingHandler.Create)
	recycling.GET("/:id", recyclingHandler.Get)
	recycling.PUT("/:id", recyclingHandler.Update)
	recycling.DELETE("/:id", recyclingHandler.Delete)

	clients := api.Group("/clients", authMiddleware)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/receivables", clientHandler.Receivables)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.PUT("/:id/ledger/:month", clientHandler.SetLedger)

	employees := api.Group("/employees", authMiddleware)
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.POST("", employeeHandler.Create, managerMiddleware)
	employees.PUT("/:id", employeeHandler.Update, managerMiddleware)

	reportGroup := api.Group("/report", authMiddleware)
	reportGroup.GET("", reportHandler.Get)
	reportGroup.POST("/recompute", reportHandler.Recompute)
	reportGroup.PATCH("/fields/:id", reportHandler.SetField)
	reportGroup.GET("/export/csv", exportHandler.ReportCSV)
	reportGroup.GET("/export/xlsx", exportHandler.ReportXLSX)

	payrollGroup := api.Group("/payroll", authMiddleware)
	payrollGroup.GET("", payrollHandler.Get)
	payrollGroup.GET("/export/xlsx", exportHandler.PayrollXLSX)
	payrollGroup.PUT("/:id/gross", payrollHandler.SetGross, managerMiddleware)
	payrollGroup.PATCH("/:id/fields/:field", payrollHandler.SetField, managerMiddleware)

	aiGroup := api.Group("/ai", authMiddleware, aiRateLimiter)
	aiGroup.POST("/summary", aiHandler.Summary)
	aiGroup.POST("/translate", aiHandler.Translate)

	events := api.Group("/events", authMiddleware)
	events.GET("/stream", eventsHandler.Stream)
}

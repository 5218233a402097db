package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/payroll_reconciliation/internal/config"
	"github.com/locvowork/payroll_reconciliation/internal/handler"
	"github.com/locvowork/payroll_reconciliation/internal/logger"
	"github.com/locvowork/payroll_reconciliation/internal/service"
	"github.com/locvowork/payroll_reconciliation/internal/source"
)

type App struct {
	Echo *echo.Echo
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{Echo: e}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(logger.Options{
		Console:  os.Stdout,
		FilePath: config.DefaultEnvConfig.LOG_FILE_PATH,
		Level:    config.DefaultEnvConfig.LOG_LEVEL,
		Format:   config.DefaultEnvConfig.LOG_FORMAT,
	})
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize dependencies
	opts, err := SourceOptions()
	if err != nil {
		return err
	}
	svc, err := NewService(config.DefaultEnvConfig.OUTPUT_QUOTE_FIELDS)
	if err != nil {
		return err
	}

	a.RegisterMiddlewares()
	a.RegisterRoutes(handlerFor(svc, opts))

	return nil
}

func handlerFor(svc *service.ReconcileService, opts source.Options) *handler.ReportHandler {
	return handler.NewReportHandler(svc, opts, time.Now)
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	if limit := config.DefaultEnvConfig.MAX_UPLOAD_BYTES; limit > 0 {
		a.Echo.Use(middleware.BodyLimit(strconv.FormatInt(limit, 10) + "B"))
	}
}

func (a *App) RegisterRoutes(reportHandler *handler.ReportHandler) {
	a.Echo.GET("/healthz", reportHandler.HealthHandler)
	a.Echo.POST("/reports", reportHandler.CreateHandler)
}

func (a *App) Run() error {
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}

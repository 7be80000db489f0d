package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "paulocell_pdv/docs"
	"paulocell_pdv/internal/adapter/http/dto/request"
	"paulocell_pdv/internal/adapter/http/handlers"
	"paulocell_pdv/internal/app"
	"paulocell_pdv/internal/infrastructure/config"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/infrastructure/scheduler"
	"paulocell_pdv/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

var registerValidators sync.Once

// Handlers groups one handler per resource.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Customer      *handlers.CustomerHandler
	Device        *handlers.DeviceHandler
	Service       *handlers.ServiceHandler
	Payment       *handlers.PaymentHandler
	Inventory     *handlers.InventoryHandler
	Document      *handlers.FiscalDocumentHandler
	Notification  *handlers.NotificationHandler
	Settings      *handlers.SettingsHandler
	PostalCode    *handlers.PostalCodeHandler
	Dashboard     *handlers.DashboardHandler
	Export        *handlers.ExportHandler
	Backup        *handlers.BackupHandler
	Authenticator usecase.IAuthUseCase
}

func NewHandlers(c *app.Container) Handlers {
	return Handlers{
		Auth:          handlers.NewAuthHandler(c.Auth),
		Customer:      handlers.NewCustomerHandler(c.Customers),
		Device:        handlers.NewDeviceHandler(c.Devices),
		Service:       handlers.NewServiceHandler(c.Services),
		Payment:       handlers.NewPaymentHandler(c.Payments),
		Inventory:     handlers.NewInventoryHandler(c.Inventory),
		Document:      handlers.NewFiscalDocumentHandler(c.Documents),
		Notification:  handlers.NewNotificationHandler(c.Notifications),
		Settings:      handlers.NewSettingsHandler(c.Settings),
		PostalCode:    handlers.NewPostalCodeHandler(c.PostalCodes),
		Dashboard:     handlers.NewDashboardHandler(c.Dashboard),
		Export:        handlers.NewExportHandler(c.Exports),
		Backup:        handlers.NewBackupHandler(c.Backup),
		Authenticator: c.Auth,
	}
}

// NewRouter mounts every route under /v1. Only ping and login are public.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	registerValidators.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := request.RegisterValidators(v); err != nil {
				logger.For("app", "router").WithError(err).Error("[app][router] failed registering validators")
			}
		}
	})

	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Auth)

	protected := v1.Group("")
	protected.Use(handlers.RequireAuth(h.Authenticator))
	addCustomerRoutes(protected, h.Customer)
	addServiceRoutes(protected, h.Device, h.Service, h.Payment, h.Export)
	addInventoryRoutes(protected, h.Inventory)
	addDocumentRoutes(protected, h.Document, h.Export)
	addSystemRoutes(protected, h)

	return router
}

// Run builds the application, starts the stock alert job and serves until
// SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	log := logger.For("app", "server")
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	jobs := scheduler.New(container.StockAlerts, container.Redis, cfg.KeyPrefix)
	if err := jobs.Start(cfg.StockAlertCron); err != nil {
		log.WithError(err).WithField("cron", cfg.StockAlertCron).Warn("[app][server] stock alert job disabled")
	} else {
		defer jobs.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, NewHandlers(container)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("[app][server] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("[app][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(handlers.Recovery())
	router.Use(handlers.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AddAllowHeaders("Authorization")
	corsConfig.AddExposeHeaders("Content-Disposition")
	router.Use(cors.New(corsConfig))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

package app

import (
	"context"
	"fmt"

	"paulocell_pdv/internal/adapter/persistence/repository"
	"paulocell_pdv/internal/adapter/persistence/store"
	"paulocell_pdv/internal/infrastructure/archive"
	"paulocell_pdv/internal/infrastructure/auth"
	"paulocell_pdv/internal/infrastructure/cache"
	"paulocell_pdv/internal/infrastructure/config"
	"paulocell_pdv/internal/infrastructure/database"
	"paulocell_pdv/internal/infrastructure/export"
	"paulocell_pdv/internal/infrastructure/fiscal"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/infrastructure/payments"
	"paulocell_pdv/internal/infrastructure/postalcode"
	"paulocell_pdv/internal/infrastructure/sms"
	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// Container holds every use case built from one Config. It is shared by the
// HTTP server and the maintenance CLI.
type Container struct {
	Config config.Config
	Redis  *redis.Client
	Keys   repository.Keys

	Customers     *usecase.CustomerUseCase
	Devices       *usecase.DeviceUseCase
	Services      *usecase.ServiceUseCase
	Inventory     *usecase.InventoryUseCase
	Documents     *usecase.FiscalDocumentUseCase
	Notifications *usecase.NotificationUseCase
	Settings      *usecase.SettingsUseCase
	PostalCodes   *usecase.PostalCodeUseCase
	Payments      *usecase.PaymentUseCase
	Dashboard     *usecase.DashboardUseCase
	Exports       *usecase.ExportUseCase
	Backup        *usecase.BackupUseCase
	StockAlerts   *usecase.StockAlertUseCase
	Auth          *usecase.AuthUseCase

	closers []func() error
}

// Build connects the storage backend and the optional integrations. Missing
// integrations are logged and left out; only storage and auth are fatal.
func Build(ctx context.Context, cfg config.Config) (*Container, error) {
	log := logger.For("app", "bootstrap")
	c := &Container{Config: cfg}

	rdb, err := database.ConnectRedis(ctx, cfg.RedisAddress, cfg.RedisPassword)
	if err != nil {
		if cfg.StorageDriver == config.StorageRedis {
			return nil, fmt.Errorf("redis: %w", err)
		}
		log.WithError(err).Warn("[app][bootstrap] redis unavailable; running without cache and job lock")
		rdb = nil
	}
	if rdb != nil {
		c.Redis = rdb
		c.closers = append(c.closers, rdb.Close)
	}

	st, err := store.Open(ctx, cfg, rdb)
	if err != nil {
		c.Close()
		return nil, err
	}

	keys := repository.NewKeys(cfg.KeyPrefix)
	c.Keys = keys

	customerRepo := repository.NewCustomerRepository(st, keys)
	deviceRepo := repository.NewDeviceRepository(st, keys)
	serviceRepo := repository.NewServiceRepository(st, keys)
	inventoryRepo := repository.NewInventoryRepository(st, keys)
	documentRepo := repository.NewFiscalDocumentRepository(st, keys)
	notificationRepo := repository.NewNotificationRepository(st, keys)
	settingsRepo := repository.NewSettingsRepository(st, keys)
	paymentRepo := repository.NewPaymentRepository(st, keys)

	c.Customers = usecase.NewCustomerUseCase(customerRepo)
	c.Devices = usecase.NewDeviceUseCase(deviceRepo, customerRepo)
	c.Services = usecase.NewServiceUseCase(serviceRepo, customerRepo, deviceRepo, notificationRepo, smsNotifier(cfg))
	c.Inventory = usecase.NewInventoryUseCase(inventoryRepo)
	c.Documents = usecase.NewFiscalDocumentUseCase(documentRepo, customerRepo, settingsRepo, fiscalGateway(cfg), cfg.FiscalAPIKey)
	c.Notifications = usecase.NewNotificationUseCase(notificationRepo)
	c.Settings = usecase.NewSettingsUseCase(settingsRepo)
	c.Payments = usecase.NewPaymentUseCase(paymentRepo, serviceRepo, customerRepo, paymentGateway(cfg), cfg.PaymentMock)
	c.Dashboard = usecase.NewDashboardUseCase(customerRepo, deviceRepo, serviceRepo, inventoryRepo, documentRepo, notificationRepo)
	c.Backup = usecase.NewBackupUseCase(st, keys.All(), keys.CompanySettings)
	c.StockAlerts = usecase.NewStockAlertUseCase(inventoryRepo, notificationRepo)

	var postalCache interfaces.IPostalCodeCache
	if rdb != nil {
		postalCache = cache.NewRedisPostalCodeCache(rdb, cfg.KeyPrefix)
	}
	c.PostalCodes = usecase.NewPostalCodeUseCase(postalcode.NewViaCEPClient(cfg.PostalCodeBaseURL), postalCache)

	var artifacts interfaces.IArtifactArchive
	if cfg.ExportArchiveBucket != "" {
		gcs, err := archive.NewGCSArchive(ctx, cfg.ExportArchiveBucket, cfg.ExportArchivePrefix, cfg.GCSCredentialsJSON)
		if err != nil {
			log.WithError(err).Warn("[app][bootstrap] export archive disabled")
		} else {
			artifacts = gcs
			c.closers = append(c.closers, gcs.Close)
		}
	}
	exporters := []interfaces.ITableExporter{export.CSVExporter{}, export.ExcelExporter{}, export.PDFExporter{}}
	c.Exports = usecase.NewExportUseCase(customerRepo, deviceRepo, serviceRepo, inventoryRepo, documentRepo, settingsRepo,
		exporters, export.PDFExporter{}, artifacts)

	c.Auth, err = authUseCase(cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	return c, nil
}

// Close releases connections opened by Build.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			logger.For("app", "bootstrap").WithError(err).Warn("[app][bootstrap] close failed")
		}
	}
	c.closers = nil
}

func smsNotifier(cfg config.Config) interfaces.ISMSNotifier {
	n, err := sms.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber, cfg.SMSMock)
	if err != nil {
		logger.For("app", "bootstrap").WithError(err).Info("[app][bootstrap] sms notifications disabled")
		return nil
	}
	return n
}

func fiscalGateway(cfg config.Config) interfaces.IFiscalGateway {
	if cfg.FiscalAPIURL == "" && !cfg.FiscalMock {
		logger.For("app", "bootstrap").Info("[app][bootstrap] no FISCAL_API_URL; documents stay pending")
		return nil
	}
	return fiscal.NewHTTPGateway(cfg.FiscalAPIURL, cfg.FiscalMock)
}

func paymentGateway(cfg config.Config) interfaces.IPaymentGateway {
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentMock)
	if err != nil {
		logger.For("app", "bootstrap").WithError(err).Warn("[app][bootstrap] payment gateway not configured")
		return nil
	}
	return gw
}

func authUseCase(cfg config.Config) (*usecase.AuthUseCase, error) {
	tokens, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return nil, err
	}

	hash := cfg.AdminPasswordHash
	if hash == "" && cfg.AdminPassword != "" {
		hash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	}
	if hash == "" {
		logger.For("app", "bootstrap").Warn("[app][bootstrap] no admin password configured; password login disabled")
	}

	var identity interfaces.IIdentityVerifier
	if cfg.GoogleClientID != "" {
		verifier, err := auth.NewGoogleVerifier(cfg.GoogleClientID)
		if err != nil {
			return nil, err
		}
		identity = verifier
	}

	return usecase.NewAuthUseCase(tokens, identity, cfg.AdminUsername, hash, cfg.AllowedEmails), nil
}

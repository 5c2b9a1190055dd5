package routes

import (
	"context"
	"fmt"

	"ecotech/internal/adapter/http/handlers"
	"ecotech/internal/adapter/persistence/memory"
	"ecotech/internal/adapter/persistence/repository"
	"ecotech/internal/config"
	"ecotech/internal/infrastructure/database"
	"ecotech/internal/infrastructure/metrics"
	"ecotech/internal/infrastructure/payments"
	"ecotech/internal/usecase"
	"ecotech/internal/usecase/interfaces"
	"ecotech/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Init()
	if err != nil {
		boot := logger.New(logger.LogLevelInfo, "")
		boot.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	gin.SetMode(cfg.HTTP.GinMode)

	router, err := NewRouter(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build the application")
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("storage", cfg.Storage.Driver).Msg("starting " + cfg.App.ServiceName)
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

// NewRouter wires every use case and handler into a gin engine.
func NewRouter(ctx context.Context, cfg *config.ServiceConfig, log logger.Logger) (*gin.Engine, error) {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.Metrics.Enabled {
		metrics.Init()
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	reportRepo, paymentRepo, err := archives(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	// Requests keep live pointers to their owner and point, so the three
	// aggregates share one process-local store and one guard.
	requestRepo := memory.NewRequestRepository()
	userRepo := memory.NewUserRepository()
	pointRepo := memory.NewCollectionPointRepository()
	guard := usecase.NewGuard()

	catalogUseCase := usecase.NewCatalogUseCase()
	userUseCase := usecase.NewUserUseCase(userRepo, guard, log)
	pointUseCase := usecase.NewCollectionPointUseCase(pointRepo, guard, log)
	requestUseCase := usecase.NewDisposalRequestUseCase(requestRepo, userRepo, pointRepo, cfg.CostPolicy(), guard, log)
	reportUseCase := usecase.NewReportUseCase(requestRepo, reportRepo, guard, log)

	mockMode := cfg.Payments.MockEnabled()
	paymentUseCase := usecase.NewTreatmentPaymentUseCase(paymentRepo, requestRepo, paymentGateway(cfg, mockMode, log), usecase.PaymentOptions{
		Policy:          cfg.CostPolicy(),
		Mock:            mockMode,
		AccessToken:     cfg.Payments.AccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, guard, log)

	v1 := router.Group("/" + cfg.App.APIVersion)
	addPingRoutes(v1)
	addCatalogRoutes(v1, handlers.NewCatalogHandler(catalogUseCase))
	addUserRoutes(v1, handlers.NewUserHandler(userUseCase))
	addPointRoutes(v1, handlers.NewPointHandler(pointUseCase))
	addRequestRoutes(v1, handlers.NewDisposalRequestHandler(requestUseCase, catalogUseCase))
	addReportRoutes(v1, handlers.NewReportHandler(reportUseCase))
	addPaymentRoutes(v1, handlers.NewTreatmentPaymentHandler(paymentUseCase, mockMode, log))

	return router, nil
}

// archives picks where generated reports and payments are kept.
func archives(ctx context.Context, cfg *config.ServiceConfig, log logger.Logger) (interfaces.IReportRepository, interfaces.ITreatmentPaymentRepository, error) {
	if !cfg.UsesDynamoDB() {
		return memory.NewReportRepository(), memory.NewTreatmentPaymentRepository(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Storage.DynamoDB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create dynamodb client: %w", err)
	}
	log.Info().
		Str("reports_table", cfg.Storage.DynamoDB.ReportsTable).
		Str("payments_table", cfg.Storage.DynamoDB.PaymentsTable).
		Msg("archiving to dynamodb")
	return repository.NewReportDynamoRepository(ddb, cfg.Storage.DynamoDB.ReportsTable),
		repository.NewTreatmentPaymentDynamoRepository(ddb, cfg.Storage.DynamoDB.PaymentsTable),
		nil
}

func paymentGateway(cfg *config.ServiceConfig, mockMode bool, log logger.Logger) interfaces.IPaymentGateway {
	if mockMode {
		log.Info().Msg("payment gateway mock mode enabled")
		return nil
	}
	gw, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, log)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
		return nil
	}
	return gw
}

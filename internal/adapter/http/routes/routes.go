package routes

import (
	"context"
	"fmt"
	"strconv"

	"solar_quote/internal/adapter/http/handlers"
	"solar_quote/internal/adapter/persistence/repository"
	"solar_quote/internal/domain/pricing"
	"solar_quote/internal/infrastructure/config"
	"solar_quote/internal/infrastructure/database"
	"solar_quote/internal/infrastructure/identity"
	"solar_quote/internal/infrastructure/kvstore"
	"solar_quote/internal/infrastructure/logging"
	"solar_quote/internal/infrastructure/presentation"
	"solar_quote/internal/usecase"
	"solar_quote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the service and blocks serving HTTP on cfg.Port.
func Run(cfg config.Config) error {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	closeStore, err := getRoutes(router, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	logging.L().Info("[http][routes] listening", zap.Int("port", cfg.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func getRoutes(router *gin.Engine, cfg config.Config) (func(), error) {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: %w", err)
	}

	kv, closeStore, err := openSnapshotStore(cfg)
	if err != nil {
		return nil, err
	}

	calc := pricing.NewCalculator(cfg.RoundingGranularity, cfg.DefaultMarginRate)
	catalogSource := repository.NewCatalogDynamoSource(ddb, cfg.CatalogTable)
	quoteRepo := repository.NewPricedQuoteDynamoRepository(ddb, cfg.QuotesTable)
	snapshotRepo := repository.NewQuoteSnapshotKVRepository(kv)
	recordRepo := repository.NewQuoteSessionRecordKVRepository(kv)

	catalogUseCase := usecase.NewCatalogUseCase(catalogSource, calc, cfg.CatalogCacheTTL)
	sessionUseCase, err := usecase.NewQuoteSessionUseCase(catalogUseCase, snapshotRepo, recordRepo, quoteRepo, identity.NewContextProvider(), calc, cfg.SessionCacheSize)
	if err != nil {
		closeStore()
		return nil, err
	}
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, presentation.NewTextSummarySink())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1,
		handlers.NewCatalogHandler(catalogUseCase),
		handlers.NewQuoteSessionHandler(sessionUseCase),
		handlers.NewQuoteHandler(quoteUseCase),
	)
	return closeStore, nil
}

func openSnapshotStore(cfg config.Config) (interfaces.IKeyValueStore, func(), error) {
	if cfg.SnapshotStore == config.SnapshotStoreMemory {
		logging.L().Warn("[http][routes] snapshots kept in memory; sessions will not survive a restart")
		return kvstore.NewMemoryStore(), func() {}, nil
	}
	store, err := kvstore.NewSQLiteStore(cfg.SnapshotDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot store: %w", err)
	}
	logging.L().Info("[http][routes] snapshot store opened", zap.String("path", store.Path()))
	return store, func() {
		if err := store.Close(); err != nil {
			logging.L().Warn("[http][routes] closing snapshot store", zap.Error(err))
		}
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.L().Error("[http][routes] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}

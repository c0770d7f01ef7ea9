package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "khadamat_hub/docs" // This will be auto-generated
	"khadamat_hub/internal/adapter/http/handlers"
	repository2 "khadamat_hub/internal/adapter/persistence/repository"
	"khadamat_hub/internal/events"
	"khadamat_hub/internal/infrastructure/database"
	"khadamat_hub/internal/infrastructure/messaging"
	"khadamat_hub/internal/infrastructure/payments"
	"khadamat_hub/internal/infrastructure/storage"
	"khadamat_hub/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const defaultReconcileInterval = 15 * time.Minute

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	attachmentRepo := repository2.NewAttachmentDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	store, err := storage.NewR2ContentStore(ctx)
	if err != nil {
		log.Fatalf("Failed to configure content store: %v", err)
	}

	gateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("Payment gateway not configured: %v", err)
	}

	bus := events.NewBus()

	if queueURL := os.Getenv("ROW_FEED_QUEUE_URL"); queueURL != "" {
		cfg, err := database.NewAWSConfigFromEnv(ctx)
		if err != nil {
			log.Fatalf("Failed to configure row feed: %v", err)
		}
		messaging.NewRowChangedFeed(sqs.NewFromConfig(cfg), queueURL).Attach(bus)
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	attachmentUseCase := usecase.NewAttachmentUseCase(attachmentRepo, store)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, catalogUseCase, attachmentUseCase, bus)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, requestRepo, paymentRepo, bus)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, requestRepo, gateway, gateway, attachmentUseCase, bus)
	reconciliationUseCase := usecase.NewReconciliationUseCase(requestRepo, paymentRepo, gateway, bus)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, requestRepo)

	dashboardUseCase.Attach(bus)
	go reconciliationUseCase.Run(ctx, reconcileInterval())

	h := workflowHandlers{
		catalog:        handlers.NewCatalogHandler(catalogUseCase),
		request:        handlers.NewRequestHandler(requestUseCase),
		order:          handlers.NewOrderHandler(orderUseCase),
		payment:        handlers.NewPaymentHandler(paymentUseCase),
		dashboard:      handlers.NewDashboardHandler(dashboardUseCase),
		reconciliation: handlers.NewReconciliationHandler(reconciliationUseCase),
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, h)
}

func reconcileInterval() time.Duration {
	raw := os.Getenv("RECONCILE_INTERVAL")
	if raw == "" {
		return defaultReconcileInterval
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Invalid RECONCILE_INTERVAL %q, using %s", raw, defaultReconcileInterval)
		return defaultReconcileInterval
	}
	return d
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

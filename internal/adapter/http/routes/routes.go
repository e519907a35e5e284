package routes

import (
	"log"
	"os"
	"strconv"

	_ "boomerang/docs" // This will be auto-generated
	"boomerang/internal/adapter/http/handlers"
	"boomerang/internal/adapter/persistence/memory"
	repository2 "boomerang/internal/adapter/persistence/repository"
	"boomerang/internal/infrastructure/database"
	"boomerang/internal/infrastructure/payments"
	"boomerang/internal/infrastructure/storage"
	"boomerang/internal/usecase"
	"boomerang/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

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
	ddb := database.ConnectDynamoDB()

	returnRepo := repository2.NewReturnDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	workflowStore := memory.NewWorkflowStore()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	fileStorage := storage.NewS3Storage(storage.ConnectS3())

	workflowUseCase := usecase.NewWorkflowUseCase(workflowStore, profileRepo, paymentGateway)
	submissionUseCase := usecase.NewSubmissionUseCase(workflowStore, fileStorage, paymentGateway, returnRepo, profileRepo)
	returnUseCase := usecase.NewReturnUseCase(returnRepo)

	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase, submissionUseCase)
	returnHandler := handlers.NewReturnHandler(returnUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReturnRoutes(v1, workflowHandler, returnHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "custodia_cheques/docs" // This will be auto-generated
	"custodia_cheques/internal/adapter/http/handlers"
	"custodia_cheques/internal/adapter/http/middleware"
	repository2 "custodia_cheques/internal/adapter/persistence/repository"
	"custodia_cheques/internal/infrastructure/cache"
	"custodia_cheques/internal/infrastructure/database"
	"custodia_cheques/internal/infrastructure/relatorio"
	"custodia_cheques/internal/infrastructure/storage"
	"custodia_cheques/internal/usecase"

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
	blobs := storage.NewS3BlobStore()
	manifestos := relatorio.NewManifestoPDFGenerator()

	chequeRepo := repository2.NewChequeDynamoRepository(ddb)
	remessaRepo := repository2.NewRemessaDynamoRepository(ddb)
	transacao := repository2.NewCustodiaTransacaoDynamoRepository(ddb)
	estornoRepo := repository2.NewEstornoDynamoRepository(ddb)
	clienteRepo := repository2.NewClienteDynamoRepository(ddb)

	chequeUseCase := usecase.NewChequeUseCase(chequeRepo, transacao, blobs)
	remessaUseCase := usecase.NewRemessaUseCase(remessaRepo, chequeRepo, blobs, manifestos)
	estornoUseCase := usecase.NewEstornoUseCase(estornoRepo, blobs)
	clienteUseCase := usecase.NewClienteUseCase(clienteRepo)

	chequeHandler := handlers.NewChequeHandler(chequeUseCase)
	remessaHandler := handlers.NewRemessaHandler(remessaUseCase)
	estornoHandler := handlers.NewEstornoHandler(estornoUseCase)
	clienteHandler := handlers.NewClienteHandler(clienteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCustodiaRoutes(v1, chequeHandler, remessaHandler, estornoHandler, clienteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// Idempotency replay for mutating routes; opt-in via REDIS_ADDR.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err := cache.OpenRedis(addr, 0)
		if err != nil {
			log.Printf("Idempotency store not configured: %v", err)
			return
		}
		router.Use(middleware.Idempotency(rdb, 24*time.Hour))
	}
}

package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/depotbar/stock-api/docs"
	v1 "github.com/depotbar/stock-api/internal/api/handler/v1"
	"github.com/depotbar/stock-api/internal/api/middleware"
	"github.com/depotbar/stock-api/internal/config"
	"github.com/depotbar/stock-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// NewServer wires the handlers on top of the given storage backend. Both the
// Postgres repositories and the in-memory store satisfy the repository
// interfaces.
func NewServer(conf *config.AppConfig, productRepo service.ProductRepository, transactionRepo service.TransactionRepository) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	productSvc := service.NewProductService(productRepo)
	transactionSvc := service.NewTransactionService(transactionRepo, productRepo)

	productHandler := v1.NewProductHandler(productSvc)
	saleHandler := v1.NewSaleHandler(transactionSvc)
	restockHandler := v1.NewRestockHandler(transactionSvc)
	s.MountHandlers(productHandler, saleHandler, restockHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(productHandler *v1.ProductHandler, saleHandler *v1.SaleHandler, restockHandler *v1.RestockHandler) {
	const basePath = "/api"

	produit := s.Router.Group(basePath)
	{
		produit.POST("/produit/create", productHandler.HandleCreateProduct)
		produit.PUT("/produit/update/:productID", productHandler.HandleUpdateProduct)
		produit.DELETE("/produit/delete/:productID", productHandler.HandleDeleteProduct)
		produit.GET("/produit/getAllProd", productHandler.HandleGetAllProducts)
		produit.GET("/produit/getProdByNom/:name", productHandler.HandleGetProductByName)
		produit.GET("/produit/getLowStock", productHandler.HandleGetLowStockProducts)
		produit.GET("/produit/:productID", productHandler.HandleGetProduct)
	}

	vente := s.Router.Group(basePath)
	{
		vente.POST("/vente/newVente", saleHandler.HandleCreateSale)
		vente.GET("/vente/getAllVente", saleHandler.HandleGetAllSales)
		vente.GET("/vente/by-id/:saleID", saleHandler.HandleGetSaleByID)
		vente.GET("/vente/by-date/:date", saleHandler.HandleGetSalesByDate)
	}

	achat := s.Router.Group(basePath)
	{
		achat.POST("/achat/new-achat", restockHandler.HandleCreateRestock)
		achat.GET("/achat/get-all-achat", restockHandler.HandleGetAllRestocks)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Depot Bar Stock API"
	docs.SwaggerInfo.Description = "Inventory, sale and restock management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

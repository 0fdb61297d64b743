package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kravdojo/gym-api/docs"
	v1 "github.com/kravdojo/gym-api/internal/api/handler/v1"
	"github.com/kravdojo/gym-api/internal/api/handler/v1/feed"
	"github.com/kravdojo/gym-api/internal/api/middleware"
	"github.com/kravdojo/gym-api/internal/config"
	"github.com/kravdojo/gym-api/internal/repository"
	"github.com/kravdojo/gym-api/internal/repository/dao"
	"github.com/kravdojo/gym-api/internal/service"
)

const basePath = "/api/v1"

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	// Feed must be started with Run before intents are broadcast.
	Feed *feed.Hub
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Feed:   feed.NewHub(zap.L().Named("feed")),
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	productHandler := s.initProductHandler(db)
	purchaseHandler := s.initPurchaseHandler(db)
	s.MountHandlers(authHandler, userHandler, productHandler, purchaseHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initProductHandler(db *gorm.DB) *v1.ProductHandler {
	productDAO := dao.NewProductDAO(db)
	repo := repository.NewProductRepository(productDAO)
	svc := service.NewProductService(repo)
	handler := v1.NewProductHandler(svc)

	return handler
}

func (s *Server) initPurchaseHandler(db *gorm.DB) *v1.PurchaseHandler {
	intentRepo := repository.NewPurchaseIntentRepository(dao.NewPurchaseIntentDAO(db))
	productRepo := repository.NewProductRepository(dao.NewProductDAO(db))
	svc := service.NewPurchaseService(intentRepo, productRepo, s.Feed.Publish)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewPurchaseHandler(svc, uSvc, s.Feed)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	productHandler *v1.ProductHandler,
	purchaseHandler *v1.PurchaseHandler,
) {
	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	public := s.Router.Group(basePath)
	{
		public.POST("/login", authHandler.HandleLogin)
		public.POST("/Users", authHandler.HandleSignup)

		public.GET("/products", productHandler.HandleListProducts)
		public.GET("/products/facets", productHandler.HandleGetFacets)
		public.GET("/products/:productID", productHandler.HandleGetProduct)
	}

	users := s.Router.Group(basePath, verifyJWT)
	{
		users.GET("/Users", userHandler.HandleListUsers)
		users.GET("/Users/:userID", userHandler.HandleGetUser)
		users.PUT("/Users/:userID", userHandler.HandleUpdateUser)
		users.DELETE("/Users/:userID", userHandler.HandleDeleteUser)
	}

	intents := s.Router.Group(basePath, verifyJWT)
	{
		intents.POST("/purchase-intents", purchaseHandler.HandleCreatePurchaseIntent)
		intents.GET("/purchase-intents", purchaseHandler.HandleListPurchaseIntents)
		intents.GET("/purchase-intents/feed", purchaseHandler.HandleFeed)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Krav Dojo member API"
	docs.SwaggerInfo.Description = "Members, product catalog and purchase intents for the dojo app."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

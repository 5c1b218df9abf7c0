package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

const maxRequestBodyBytes = 1 << 20

// Params lists router dependencies.
type Params struct {
	fx.In

	Facade  handlers.StorefrontFacade
	Session middleware.SessionIssuer
	Config  *config.Config
	Logger  *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.CORS(p.Config.CORSOrigins))
	engine.Use(middleware.DecompressRequest(maxRequestBodyBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{".xlsx"})))

	catalogHandler := handlers.NewCatalogHandler(p.Facade)
	cartHandler := handlers.NewCartHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	contactHandler := handlers.NewContactHandler(p.Facade)
	adminHandler := handlers.NewAdminHandler(p.Facade, p.Facade, p.Config.LowStockThreshold)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	engine.GET("/healthz", healthHandler.Check)

	shop := engine.Group("")
	shop.Use(middleware.Session(p.Session, p.Config.CookieSecure))
	shop.GET("/", catalogHandler.Home)
	shop.GET("/products/", catalogHandler.Products)
	shop.GET("/products/:id/", catalogHandler.ProductDetail)
	shop.GET("/services/", catalogHandler.Services)
	shop.GET("/search/", catalogHandler.Search)
	shop.GET("/about/", contactHandler.About)
	shop.GET("/contact/", contactHandler.Info)
	shop.POST("/contact/", contactHandler.Submit)

	shop.GET("/cart/", cartHandler.Summary)
	shop.POST("/cart/add/", cartHandler.Add)
	shop.POST("/cart/remove/", cartHandler.Remove)
	shop.POST("/cart/update/", cartHandler.Update)
	shop.POST("/order/place/", orderHandler.Place)

	admin := engine.Group("/admin")
	admin.Use(middleware.RequireAPIKey(p.Config.AdminAPIKey, p.Config.AdminAPIKeyHash))
	admin.GET("/orders/:id", adminHandler.GetOrder)
	admin.PATCH("/orders/:id", adminHandler.UpdateOrder)
	admin.GET("/reports/low-stock.xlsx", adminHandler.LowStockReport)

	return engine
}

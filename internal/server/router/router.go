package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(products *handlers.ProductHandler, customersH *handlers.CustomerHandler, quotesH *handlers.QuoteHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", products.List)
		api.GET("/products/suggestions", products.Suggestions)
		api.POST("/products/load-more", products.LoadMore)
		api.POST("/products", products.Create)
		api.PUT("/products/:id", products.Update)
		api.DELETE("/products/:id", products.Delete)

		api.GET("/customers", customersH.List)
		api.POST("/customers", customersH.Create)
		api.PUT("/customers/:id", customersH.Update)
		api.DELETE("/customers/:id", customersH.Delete)

		api.GET("/quotes", quotesH.List)
		api.POST("/quotes", quotesH.Create)
		api.PUT("/quotes/:id", quotesH.Update)
		api.DELETE("/quotes/:id", quotesH.Delete)
		api.POST("/quotes/preview", quotesH.Preview)
		api.GET("/quotes/autofill", quotesH.Autofill)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

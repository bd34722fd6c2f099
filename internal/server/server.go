// Package server wires the gin engine: middleware, routes and the two
// unauthenticated liveness endpoints.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/helix90/list-handler/internal/api/controller"
	"github.com/helix90/list-handler/internal/auth"
)

var tracer = otel.Tracer("server")

// Server owns the configured gin engine.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the engine and registers every route.
func NewServer(
	guard *auth.Guard,
	authController *controller.AuthController,
	listController *controller.ListController,
	itemController *controller.ItemController,
	wsController *controller.WSController,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), cors(), tracing())

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to List Handler API"})
	})
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authRoutes := engine.Group("/auth")
	{
		authRoutes.POST("/register", authController.Register)
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/logout", guard.RequireAuth(), authController.Logout)
	}

	// Every route below carries a path user id; the owner check runs
	// before any handler touches data.
	userRoutes := engine.Group("/users/:userId", guard.RequireAuth(), guard.RequireOwner())
	{
		userRoutes.GET("/ws", wsController.Subscribe)

		lists := userRoutes.Group("/lists")
		{
			lists.GET("", listController.GetAll)
			lists.POST("", listController.Create)
			lists.GET("/:listId", listController.Get)
			lists.PUT("/:listId", listController.Update)
			lists.DELETE("/:listId", listController.Delete)

			items := lists.Group("/:listId/items")
			{
				items.GET("", itemController.GetAll)
				items.POST("", itemController.Create)
				items.PUT("/:itemId", itemController.Update)
				items.DELETE("/:itemId", itemController.Delete)
				items.PATCH("/:itemId", itemController.Toggle)
			}
		}
	}

	return &Server{engine: engine}
}

// Engine returns the underlying gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// cors allows any origin, matching the open CORS policy of the API.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// tracing opens a span per request and records server failures on it.
func tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath(), trace.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.url", c.Request.URL.String()),
		))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

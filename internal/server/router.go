package server

import (
	"fmt"
	"net/http"

	_ "boardgames/backend/docs" // registers the swagger spec served at /swagger
	"boardgames/backend/internal/handler"
	"boardgames/backend/internal/middleware"
	"boardgames/backend/internal/repository"
	"boardgames/backend/internal/views"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options are the dependencies of the router.
type Options struct {
	Games       repository.GameRepository
	Logger      *logrus.Logger
	EnablePprof bool
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(opts Options) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		middleware.Telemetry(),
	)
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/public", views.Static())

	games := handler.NewGameHandler(opts.Games, opts.Logger)

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.EnablePprof {
		pprof.Register(router)
	}

	// HTML pages and form submissions
	router.GET("/", games.Home)
	gameRoutes := router.Group("/games")
	{
		gameRoutes.GET("", games.ListGames)
		gameRoutes.GET("/add", games.NewGameForm) // static segment wins over /:id
		gameRoutes.POST("", games.CreateGame)
		gameRoutes.GET("/:id", games.ShowGame)
		gameRoutes.GET("/:id/edit", games.EditGameForm)
		gameRoutes.PUT("/:id", games.UpdateGame)
		gameRoutes.DELETE("/:id", games.DeleteGame)
	}

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		apiGames := apiV1.Group("/games")
		{
			apiGames.GET("", games.GetGames)
			apiGames.GET("/:id", games.GetGameByID)
		}
	}

	router.NoRoute(games.NotFound)
	return router, nil
}

// Handler wraps the router so HTML forms can reach the PUT and DELETE routes.
func Handler(router *gin.Engine) http.Handler {
	return middleware.MethodOverride(router)
}

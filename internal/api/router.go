package api

import (
	"lokal/docs"
	"lokal/internal/api/handlers"
	"lokal/pkg/auth"
	"lokal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	businessHandler *handlers.BusinessHandler,
	postHandler *handlers.PostHandler,
	recHandler *handlers.RecommendationHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	businesses := protected.Group("/businesses")
	businesses.Post("", businessHandler.CreateBusiness)
	businesses.Get("", businessHandler.ListBusinesses)
	businesses.Get("/:id", businessHandler.GetBusiness)

	posts := protected.Group("/posts")
	posts.Post("", postHandler.CreatePost)
	posts.Get("", postHandler.ListPosts)
	posts.Get("/likes", postHandler.ListMyLikes)
	posts.Post("/:id/like", postHandler.LikePost)
	posts.Delete("/:id/like", postHandler.UnlikePost)

	protected.Get("/recommendations", recHandler.GetRecommendations)

	return app
}

package main

import (
	"log"
	"net/http"
	"os"

	"nc-news-api/config"
	seed "nc-news-api/db"
	"nc-news-api/handlers"
	"nc-news-api/helper"
	"nc-news-api/middleware"
	"nc-news-api/repositories"
	"nc-news-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	if os.Getenv("DB_SEED") == "true" {
		if err := seed.Seed(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	// Initialize repositories
	topicRepo := repositories.NewTopicRepository(db)
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	topicService := services.NewTopicService(topicRepo)
	userService := services.NewUserService(userRepo)
	articleService := services.NewArticleService(articleRepo, topicRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo, userRepo)
	authService := services.NewAuthService(userRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	apiHandler := handlers.NewAPIHandler()
	topicHandler := handlers.NewTopicHandler(topicService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, commentService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)
	authHandler := handlers.NewAuthHandler(authService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("", apiHandler.GetEndpoints)

		api.GET("/topics", topicHandler.GetTopics)
		api.POST("/topics", topicHandler.PostTopic)

		api.GET("/articles", articleHandler.GetArticles)
		api.POST("/articles", articleHandler.PostArticle)
		api.GET("/articles/:article_id", articleHandler.GetArticleByID)
		api.PATCH("/articles/:article_id", articleHandler.PatchArticleVotes)
		api.GET("/articles/:article_id/comments", articleHandler.GetCommentsByArticle)
		api.POST("/articles/:article_id/comments", articleHandler.PostComment)

		api.GET("/comments/:comment_id", commentHandler.GetCommentByID)
		api.PATCH("/comments/:comment_id", commentHandler.PatchCommentVotes)
		api.DELETE("/comments/:comment_id", commentHandler.DeleteComment)

		api.GET("/users", userHandler.GetUsers)
		api.GET("/users/:username", userHandler.GetUserByUsername)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/guest", authHandler.Guest)
			auth.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "404 - Not Found: Endpoint does not exist"})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(router.Run(":" + port))
}

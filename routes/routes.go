package routes

import (
	"strings"
	"time"

	"alumninet/config"
	"alumninet/handlers"
	"alumninet/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRouter(db *mongo.Database, cfg config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000", "https://alumini-connect-frontend.vercel.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	auth := middleware.RequireAuth(cfg.JWTSecret)

	// Auth
	router.POST("/api/auth/register", handlers.Register(db))
	router.POST("/api/auth/login", handlers.Login(db, cfg.JWTSecret, cfg.TokenTTL))

	// Users: directory, search and fetch-by-id are public; profile routes
	// need the caller's identity.
	users := router.Group("/api/users")
	{
		users.GET("/directory", handlers.GetDirectory(db))
		users.GET("/search", handlers.SearchAlumni(db))
		users.GET("/profile", auth, handlers.GetMyProfile(db))
		users.PUT("/update-profile", auth, handlers.UpdateMyProfile(db))
		users.GET("/:id", handlers.GetAlumniByID(db))
	}

	// Achievements
	router.POST("/api/achievements/add", auth, handlers.AddAchievement(db))

	// Messages
	messages := router.Group("/api/messages", auth)
	{
		messages.POST("/send", handlers.SendMessage(db))
		messages.GET("/:userId", handlers.GetThread(db))
	}

	// Posts
	posts := router.Group("/api/posts")
	{
		posts.POST("/create", auth, handlers.CreatePost(db))
		posts.GET("/allpost", handlers.GetAllPosts(db))
		posts.POST("/:id/like", auth, handlers.LikePost(db))
		posts.POST("/:id/comment", auth, handlers.AddComment(db))
	}

	// External link
	router.PUT("/api/linkedin/url", auth, handlers.SyncLinkedIn(db))

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{"message": "Endpoint not found"})
			return
		}
		c.Next()
	})

	return router
}

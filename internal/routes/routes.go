package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/handler"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/middleware"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/jwt"
	"github.com/redis/go-redis/v9"
)

// Handlers bundles every HTTP handler for route registration
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Post     *handler.PostHandler
	Message  *handler.MessageHandler
	Exercise *handler.ExerciseHandler
	Workout  *handler.WorkoutHandler
	Media    *handler.MediaHandler
	Search   *handler.SearchHandler
}

// Register wires every route group onto the engine
func Register(r *gin.Engine, h *Handlers, jwtManager *jwt.Manager, redisClient *redis.Client) {
	api := r.Group("/api")
	api.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.GET("/me", middleware.JWTAuth(jwtManager), h.Auth.Me)
	}

	users := api.Group("/users")
	{
		users.PUT("/me", middleware.JWTAuth(jwtManager), h.User.UpdateProfile)
		users.GET("/:id", h.User.GetProfile)
		users.GET("/:id/posts", h.User.GetUserPosts)
	}

	posts := api.Group("/posts")
	{
		posts.GET("", middleware.OptionalJWTAuth(jwtManager), h.Post.ListPosts)
		posts.GET("/:id", middleware.OptionalJWTAuth(jwtManager), h.Post.GetPost)
		posts.POST("", middleware.JWTAuth(jwtManager), h.Post.CreatePost)
		posts.PUT("/:id", middleware.JWTAuth(jwtManager), h.Post.UpdatePost)
		posts.DELETE("/:id", middleware.JWTAuth(jwtManager), h.Post.DeletePost)
		posts.POST("/:id/like", middleware.JWTAuth(jwtManager), h.Post.ToggleLike)
		posts.GET("/:id/comments", h.Post.ListComments)
		posts.POST("/:id/comments", middleware.JWTAuth(jwtManager), h.Post.CreateComment)
	}
	api.DELETE("/comments/:commentId", middleware.JWTAuth(jwtManager), h.Post.DeleteComment)

	// Messaging keeps the frontend's original contract: participant identity
	// travels in the request (senderId body field, userId query parameter)
	// rather than being derived from the token.
	messages := api.Group("/messages")
	{
		messages.GET("/conversations", h.Message.ListConversations)
		messages.GET("/unread", h.Message.GetUnreadCount)
		messages.POST("", h.Message.StartConversation)
		messages.GET("/:conversationId", h.Message.GetMessages)
		messages.POST("/:conversationId", h.Message.SendMessage)
		messages.PUT("/:conversationId/read", h.Message.MarkRead)
	}

	exercises := api.Group("/exercises")
	{
		exercises.GET("", h.Exercise.ListExercises)
		exercises.GET("/:id", h.Exercise.GetExercise)
		exercises.POST("", middleware.JWTAuth(jwtManager), middleware.RequireRole("admin"), h.Exercise.CreateExercise)
		exercises.PUT("/:id", middleware.JWTAuth(jwtManager), middleware.RequireRole("admin"), h.Exercise.UpdateExercise)
	}

	workouts := api.Group("/workouts", middleware.JWTAuth(jwtManager))
	{
		workouts.GET("", h.Workout.ListWorkouts)
		workouts.GET("/:id", h.Workout.GetWorkout)
		workouts.POST("", h.Workout.CreateWorkout)
		workouts.POST("/generate", middleware.RateLimitPerUser(redisClient, 10), h.Workout.GenerateWorkout)
		workouts.DELETE("/:id", h.Workout.DeleteWorkout)
	}

	api.POST("/media", middleware.JWTAuth(jwtManager), h.Media.UploadImage)
	api.GET("/media/url", middleware.JWTAuth(jwtManager), h.Media.GetDownloadURL)
	api.GET("/search/posts", h.Search.SearchPosts)
}

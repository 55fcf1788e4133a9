package main

import (
	"log"
	"strconv"
	"time"

	"github.com/CompileLord/Test-programm-for-Schools/internal/config"
	"github.com/CompileLord/Test-programm-for-Schools/internal/database"
	"github.com/CompileLord/Test-programm-for-Schools/internal/handlers"
	"github.com/CompileLord/Test-programm-for-Schools/internal/middleware"
	"github.com/CompileLord/Test-programm-for-Schools/internal/services"
	"github.com/CompileLord/Test-programm-for-Schools/internal/store"

	_ "github.com/CompileLord/Test-programm-for-Schools/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz Hosting API
// @version         1.0
// @description     API for authoring, publishing and taking quizzes over a local and a shared online store
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	localDB := database.ConnectLocal(cfg)
	onlineDB := database.ConnectOnline(cfg)

	probeMS, _ := strconv.Atoi(cfg.ProbeTimeoutMS)
	if probeMS <= 0 {
		probeMS = 500
	}
	resolver := store.NewResolver(localDB, onlineDB, time.Duration(probeMS)*time.Millisecond)

	authService := services.NewAuthService(localDB, cfg.JWTSecret)
	quizService := services.NewQuizService(resolver)
	categoryService := services.NewCategoryService(resolver)
	attemptService := services.NewAttemptService(resolver)
	publishService := services.NewPublishService(resolver)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService, publishService)
	questionHandler := handlers.NewQuestionHandler(quizService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	profileHandler := handlers.NewProfileHandler(authService, attemptService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.GET("/:id", middleware.OptionalAuth(authService), quizHandler.GetQuiz)

			quizzes.POST("", middleware.JWTAuth(authService), quizHandler.CreateQuiz)
			quizzes.PUT("/:id", middleware.JWTAuth(authService), quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", middleware.JWTAuth(authService), quizHandler.DeleteQuiz)
			quizzes.POST("/:id/publish", middleware.JWTAuth(authService), quizHandler.PublishQuiz)
			quizzes.POST("/:id/questions", middleware.JWTAuth(authService), questionHandler.CreateQuestion)

			quizzes.GET("/:id/take", middleware.JWTAuth(authService), attemptHandler.TakeQuiz)
			quizzes.POST("/:id/attempts", middleware.JWTAuth(authService), attemptHandler.SubmitAttempt)
		}

		questions := api.Group("/questions")
		questions.Use(middleware.JWTAuth(authService))
		{
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/explore", categoryHandler.Explore)
			categories.POST("", middleware.JWTAuth(authService), categoryHandler.CreateCategory)
		}

		attempts := api.Group("/attempts")
		attempts.Use(middleware.JWTAuth(authService))
		{
			attempts.GET("/:id", attemptHandler.GetResults)
		}

		me := api.Group("/me")
		me.Use(middleware.JWTAuth(authService))
		{
			me.GET("/quizzes", quizHandler.MyQuizzes)
			me.GET("/history", attemptHandler.History)
			me.GET("/profile", profileHandler.Profile)
		}

		upload := api.Group("/upload")
		upload.Use(middleware.JWTAuth(authService))
		{
			upload.POST("", uploadHandler.UploadImage)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

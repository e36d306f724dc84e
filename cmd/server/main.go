package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/config"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/database"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/handlers"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/llm"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/repository"
	cronjobs "github.com/ksabhilash-bot/Mdplanner-sub000/internal/scheduler"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/services"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/email"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/middleware"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	mailer := email.NewSender(cfg.SMTPSender, cfg.SMTPPassword, cfg.SMTPHost, cfg.SMTPPort)
	llmClient := llm.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout)

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	mealLogRepo := repository.NewMealLogRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	planRepo := repository.NewMealPlanRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo, mailer, "http://localhost:"+cfg.Port)
	profileService := services.NewProfileService(profileRepo)
	foodService := services.NewFoodService(foodRepo)
	mealLogService := services.NewMealLogService(mealLogRepo, foodRepo)
	goalService := services.NewGoalService(goalRepo)
	notificationService := services.NewNotificationService(notifRepo, userRepo, mailer)
	plannerService := services.NewPlannerService(profileRepo, goalRepo, planRepo, llmClient, notificationService)
	reminderService := services.NewReminderService(goalRepo, mealLogRepo, notificationService, clockwork.NewRealClock())

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	profileHandler := handlers.NewProfileHandler(profileService)
	foodHandler := handlers.NewFoodHandler(foodService)
	mealLogHandler := handlers.NewMealLogHandler(mealLogService)
	planHandler := handlers.NewPlanHandler(plannerService, goalService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public user routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")
	router.HandleFunc("/users/verify", userHandler.VerifyEmailHandler).Methods("GET")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/me", userHandler.GetMeHandler).Methods("GET")

	// Profile routes
	profileRoutes := router.PathPrefix("/profile").Subrouter()
	profileRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	profileRoutes.HandleFunc("", profileHandler.SaveProfileHandler).Methods("PUT")
	profileRoutes.HandleFunc("", profileHandler.GetProfileHandler).Methods("GET")

	// Meal plan and goal routes
	planRoutes := router.PathPrefix("/plans").Subrouter()
	planRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	planRoutes.HandleFunc("/generate", planHandler.GeneratePlanHandler).Methods("POST")
	planRoutes.HandleFunc("/latest", planHandler.LatestPlanHandler).Methods("GET")

	goalRoutes := router.PathPrefix("/goals").Subrouter()
	goalRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	goalRoutes.HandleFunc("/active", planHandler.ActiveGoalHandler).Methods("GET")

	// Meal log routes
	logRoutes := router.PathPrefix("/logs").Subrouter()
	logRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	logRoutes.HandleFunc("", mealLogHandler.LogMealHandler).Methods("POST")
	logRoutes.HandleFunc("", mealLogHandler.GetMealLogsHandler).Methods("GET")

	nutritionRoutes := router.PathPrefix("/nutrition").Subrouter()
	nutritionRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	nutritionRoutes.HandleFunc("/daily", mealLogHandler.DailyNutritionHandler).Methods("GET")

	// Food catalog routes
	foodRoutes := router.PathPrefix("/foods").Subrouter()
	foodRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	foodRoutes.HandleFunc("", foodHandler.ListFoodsHandler).Methods("GET")
	foodRoutes.HandleFunc("/{id}", foodHandler.GetFoodHandler).Methods("GET")

	adminFoodRoutes := router.PathPrefix("/foods").Subrouter()
	adminFoodRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminFoodRoutes.Use(middleware.RequireRole("admin"))
	adminFoodRoutes.HandleFunc("", foodHandler.CreateFoodHandler).Methods("POST")

	// Notification routes
	notifRoutes := router.PathPrefix("/notifications").Subrouter()
	notifRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	notifRoutes.HandleFunc("", notificationHandler.GetUserNotificationsHandler).Methods("GET")
	notifRoutes.HandleFunc("/{id}/read", notificationHandler.MarkAsReadHandler).Methods("POST")
	notifRoutes.HandleFunc("/{id}", notificationHandler.DeleteNotificationHandler).Methods("DELETE")

	// Admin routes
	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.HandleFunc("/users", userHandler.AdminGetAllUsersHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Start the reminder scheduler
	scheduler, err := cronjobs.NewScheduler(reminderService, notificationService)
	if err != nil {
		log.Fatalf("Scheduler setup error: %v", err)
	}
	scheduler.Start()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	handler := c.Handler(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		fmt.Printf("Server running on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Let an in-flight scan finish before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down")
	scheduler.Stop()
	_ = server.Close()
}

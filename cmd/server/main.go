package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"treinoapp/workout-service/internal/api"
	"treinoapp/workout-service/internal/config"
	"treinoapp/workout-service/internal/repository/mongo"
	"treinoapp/workout-service/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Workout Plan Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repository & Service ---
	log.Println("Initializing repositories and services...")
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	workoutService := service.NewWorkoutService(workoutRepo)

	// --- Seed Predefined Catalog ---
	// Runs before the listener starts so the catalog is complete from the
	// first served request. A no-op when predefined workouts already exist.
	log.Println("Seeding predefined workout catalog (if empty)...")
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := service.SeedPredefinedWorkouts(seedCtx, workoutRepo); err != nil {
		cancelSeed()
		log.Fatalf("FATAL: Could not seed predefined workouts: %v", err)
	}
	cancelSeed()

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware
	router.Use(api.CORSMiddleware())

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, workoutService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give in-flight requests 5 seconds to finish
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

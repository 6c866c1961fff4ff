package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"affinity_server/routes"
	"affinity_server/services"
	"affinity_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	// Root context canceled on SIGINT/SIGTERM; stops the subscription loops
	// and drives server shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize DynamoDB clients and the document store service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	streamService := &services.StreamService{
		Dynamo:  dynamoService,
		Streams: services.InitializeStreamsClient(),
	}
	log.Println("DynamoDB client initialized.")

	emailURL := os.Getenv("EMAIL_API_URL")
	if emailURL == "" {
		emailURL = "http://localhost:5000"
	}

	// Initialize Services
	summaryService := &services.SummaryService{Store: dynamoService}
	activityService := &services.ActivityService{Store: dynamoService, Summary: summaryService}
	feedbackService := &services.FeedbackService{Store: dynamoService, Summary: summaryService}
	recommendationService := &services.RecommendationService{Store: dynamoService}
	notificationService := &services.NotificationService{Store: dynamoService}
	userService := &services.UserService{Store: dynamoService}
	emailService := services.NewEmailService(emailURL)

	// Socket server for dashboard live push
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Reactive pipeline and dashboard projections
	pipelineService := services.NewPipelineService(streamService, emailService)
	pipelineService.Start(ctx)
	dashboardService := services.NewDashboardService(streamService, &socket.DashboardBroadcaster{Server: socketServer})
	dashboardService.Start(ctx)

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterTrackRoutes(r, activityService)
	routes.RegisterEngageRoutes(r, feedbackService)
	routes.RegisterRecommendationRoutes(r, recommendationService)
	routes.RegisterDashboardRoutes(r, dashboardService, pipelineService)
	routes.RegisterAdminRoutes(r, notificationService, summaryService)
	routes.RegisterUserRoutes(r, userService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: corsHandler,
	}

	go func() {
		log.Printf("Starting server on port %s...\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}

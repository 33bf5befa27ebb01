package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sparq_server/routes"
	"sparq_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	// Initialize AWS clients and core services
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	log.Println("Initializing SQS client...")
	sqsClient := services.InitializeSQSClient()
	queue := &services.SQSService{Client: sqsClient, QueueURL: os.Getenv("MATCH_QUEUE_URL")}
	log.Println("SQS client initialized.")

	s3Service := &services.S3Service{Client: services.InitializeS3Client(), Bucket: os.Getenv("S3_BUCKET_NAME")}

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	cardService := &services.CardService{Dynamo: dynamoService}
	likeService := &services.LikeService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService}
	publisher := &services.NotificationPublisher{Profiles: userProfileService, Cards: cardService, Queue: queue}
	engine := &services.MatchmakingService{
		Profiles:  userProfileService,
		Cards:     cardService,
		Likes:     likeService,
		Matches:   matchService,
		Publisher: publisher,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the notification consumer next to the HTTP server. Without a
	// bot token the server still runs; alerts just stay queued.
	if bot, err := services.InitializeTelegramBot(); err != nil {
		log.Printf("⚠️ Telegram bot unavailable, match alerts will stay queued: %v", err)
	} else {
		telegramService := &services.TelegramService{Bot: bot, AppURL: os.Getenv("MINI_APP_URL")}
		consumer := &services.NotificationConsumer{Queue: queue, Bot: telegramService}
		go consumer.Run(ctx)
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Sparq")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterCardRoutes(r, cardService)
	routes.RegisterActionRoutes(r, engine, likeService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	srv := &http.Server{Addr: ":" + port, Handler: corsHandler}

	go func() {
		log.Printf("Starting server on port %s...\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"waymark_server/routes"
	"waymark_server/services"
	"waymark_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	achievementService := &services.AchievementService{Dynamo: dynamoService}
	friendService := &services.FriendService{Dynamo: dynamoService}
	pinService := &services.PinService{Dynamo: dynamoService}
	tagService := &services.TagService{Dynamo: dynamoService}
	userService := &services.UserService{Dynamo: dynamoService}
	demoService := &services.DemoService{Pins: pinService, Achievements: achievementService}

	// Socket.IO server for live update pushes
	socketServer := socket.NewSocketServer()
	notifier := &socket.Notifier{Server: socketServer}
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("❌ Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

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
		fmt.Fprintln(w, "Welcome to Waymark")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterAchievementRoutes(r, achievementService, notifier)
	routes.RegisterFriendRoutes(r, friendService, notifier)
	routes.RegisterPinRoutes(r, pinService)
	routes.RegisterTagRoutes(r, tagService)
	routes.RegisterUserRoutes(r, userService)
	routes.RegisterDemoRoutes(r, demoService, notifier)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"otherhalf_server/models"
	"otherhalf_server/routes"
	"otherhalf_server/services"
	"otherhalf_server/socket"
	"otherhalf_server/storage"
	"otherhalf_server/store"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// newStorageAdapter picks the snapshot backend: DynamoDB when a table is
// configured, a data directory when one is set, in-memory otherwise.
func newStorageAdapter() storage.Adapter {
	if table := os.Getenv("DYNAMO_SNAPSHOTS_TABLE"); table != "" {
		log.Printf("Using DynamoDB snapshot storage (table %s)", table)
		return storage.NewDynamoAdapter(storage.InitializeDynamoDBClient(), table)
	}
	if dir := os.Getenv("STORE_DATA_DIR"); dir != "" {
		adapter, err := storage.NewFileAdapter(dir)
		if err != nil {
			log.Fatalf("Failed to open data dir: %v", err)
		}
		log.Printf("Using file snapshot storage (%s)", dir)
		return adapter
	}
	log.Println("Using in-memory snapshot storage")
	return storage.NewMemoryAdapter()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	adapter := newStorageAdapter()
	st := store.New(adapter, store.Config{})

	// Initialize services
	authService := &services.AuthService{Storage: adapter, Store: st}
	mediaService := services.NewMediaService()
	signaler := services.NewStubSignaler()

	var generator services.TextGenerator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		generator = services.NewGeminiClient(apiKey)
	} else {
		log.Println("GEMINI_API_KEY is not set. Ice breaker generation will use fallbacks.")
	}
	icebreakerService := &services.IcebreakerService{Generator: generator}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, models.AppName+" API is running")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterProfileRoutes(r, authService)
	routes.RegisterMatchRoutes(r, st, authService)
	routes.RegisterChatRoutes(r, st)
	routes.RegisterNotificationRoutes(r, st)
	routes.RegisterConfessionRoutes(r, st)
	routes.RegisterMediaRoutes(r, mediaService)
	routes.RegisterIcebreakerRoutes(r, icebreakerService)
	routes.RegisterCallRoutes(r, signaler)

	// Mount the Socket.IO server
	socketServer := socket.NewSocketServer(st, signaler)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.PathPrefix("/socket.io/").Handler(socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

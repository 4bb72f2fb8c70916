package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forkful/db"
	"forkful/feed"
	"forkful/ingredients"
	"forkful/middleware"
	"forkful/ratelim"
	"forkful/rdx"
	"forkful/recipes"
	"forkful/routes"
	"forkful/tags"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// Set up all routes and middleware layers
func setupRouter(rateLimiter *ratelim.RateLimiter, hub *feed.Hub) http.Handler {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router)
	routes.AddUserRoutes(router)
	routes.AddTagRoutes(router)
	routes.AddIngredientRoutes(router)
	routes.AddRecipeRoutes(router)
	routes.AddShortLinkRoutes(router, rateLimiter)
	routes.AddFeedRoutes(router, hub)
	routes.AddStaticRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return middleware.Recover(middleware.Logging(middleware.SecurityHeaders(c.Handler(router))))
}

func main() {
	ingredientsPath := flag.String("ingredients", "", "import ingredient reference data from a JSON file and exit")
	tagsPath := flag.String("tags", "", "import tag reference data from a JSON file and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatalf("MONGODB_URI environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := db.Connect(ctx, mongoURI, getenv("DB_NAME", "forkful")); err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	cancel()
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	log.Println("connected to MongoDB")

	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	if *ingredientsPath != "" || *tagsPath != "" {
		runImports(*ingredientsPath, *tagsPath)
		return
	}

	if err := rdx.Init(context.Background(), os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD")); err != nil {
		log.Fatalf("redis connect: %v", err)
	}

	hub := feed.NewHub()
	recipes.LiveFeed = hub

	rateLimiter := ratelim.NewRateLimiter()
	handler := setupRouter(rateLimiter, hub)

	addr := ":" + getenv("PORT", "8000")
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Println("server started on", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("could not listen on %s: %v", addr, err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	log.Println("shutdown signal received, shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}

func runImports(ingredientsPath, tagsPath string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if ingredientsPath != "" {
		added, skipped, err := ingredients.ImportFile(ctx, ingredientsPath)
		if err != nil {
			log.Fatalf("ingredient import: %v", err)
		}
		log.Printf("ingredients imported: %d added, %d already present", added, skipped)
	}
	if tagsPath != "" {
		added, err := tags.ImportFile(ctx, tagsPath)
		if err != nil {
			log.Fatalf("tag import: %v", err)
		}
		log.Printf("tags imported: %d added", added)
	}
}

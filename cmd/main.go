package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	discordclient "deltaboard/clients/discord"
	"deltaboard/config"
	"deltaboard/db"
	"deltaboard/handlers"
	"deltaboard/middleware"
	"deltaboard/services/auth"
	"deltaboard/services/economy"
	"deltaboard/services/guilds"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.SlackAlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "deltaboard",
		LogsURL:     cfg.ServerLogsURL,
	})

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize repositories with shared connection
	economySettingsRepo := db.NewPostgresEconomySettingsRepository(dbConn, cfg.DatabaseSchema)

	// Initialize the Discord client and domain services
	discordClient := discordclient.NewDiscordClient(&http.Client{}, cfg.DiscordConfig.BotToken)

	authService := auth.NewAuthService(
		discordClient,
		cfg.DiscordConfig.ClientID,
		cfg.DiscordConfig.ClientSecret,
		cfg.DiscordConfig.RedirectURI,
	)
	guildsService := guilds.NewGuildsService(discordClient, cfg.DiscordConfig.BotToken)
	economyService := economy.NewEconomySettingsService(economySettingsRepo)

	apiHandler := handlers.NewDashboardAPIHandler(authService, guildsService, economyService)
	httpHandler := handlers.NewDashboardHTTPHandler(apiHandler)
	authMiddleware := middleware.NewDiscordAuthMiddleware(discordClient)

	// Create a new router
	router := mux.NewRouter()
	httpHandler.SetupEndpoints(router, authMiddleware)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.RequestIDMiddleware(alertMiddleware.HTTPMiddleware(c.Handler(router))),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transfermarkt_gateway/internal/handlers"
	"transfermarkt_gateway/internal/llm"
	"transfermarkt_gateway/internal/logger"
	"transfermarkt_gateway/internal/repository"
	"transfermarkt_gateway/internal/repository/db"
	"transfermarkt_gateway/internal/server"
	"transfermarkt_gateway/internal/service"
	"transfermarkt_gateway/internal/upstream"

	"github.com/spf13/viper"
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml + env bindings; the file itself is optional
	if err := loadConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalw("error reading config", "err", err)
		}
		log.Infow("no config file found; using defaults and environment")
	}

	// storage backend: flat JSON files by default, sqlite when configured
	repos, closeStore, err := openRepository(log)
	if err != nil {
		log.Fatalw("failed to init storage", "err", err)
	}
	defer closeStore()

	// outbound clients
	groq := llm.New(llm.Config{
		APIKey: viper.GetString("groq.api_key"),
		URL:    viper.GetString("groq.url"),
		Model:  viper.GetString("groq.model"),
	})
	proxy := upstream.NewClient(upstream.Config{
		BaseURL:     viper.GetString("upstream.base_url"),
		FallbackURL: viper.GetString("upstream.fallback_url"),
	})

	// wire dependencies
	services := service.NewService(repos, groq, log)
	apiHandler := handlers.NewHandler(services, proxy, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.SetDefault("port", "8001")
	viper.SetDefault("storage.backend", "json")
	viper.SetDefault("storage.users_file", "users.json")
	viper.SetDefault("storage.favorites_file", "favorites.json")
	viper.SetDefault("storage.db_path", "gateway.db")
	viper.SetDefault("upstream.base_url", upstream.DefaultBaseURL)
	viper.SetDefault("upstream.fallback_url", upstream.DefaultFallbackURL)
	viper.SetDefault("groq.url", llm.DefaultURL)
	viper.SetDefault("groq.model", llm.DefaultModel)

	// The deployed gateway is driven by these two environment variables.
	_ = viper.BindEnv("upstream.base_url", "TRANSFERMARKT_API_URL")
	_ = viper.BindEnv("groq.api_key", "GROQ_API_KEY")
	_ = viper.BindEnv("port", "PORT")

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openRepository selects the storage backend from config and returns the
// repositories plus a close func for backends that hold resources.
func openRepository(log *logger.Logger) (*repository.Repository, func(), error) {
	switch backend := viper.GetString("storage.backend"); backend {
	case "sqlite":
		dbPath := viper.GetString("storage.db_path")
		handle, err := db.InitDB(dbPath)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("storage_backend", "backend", backend, "path", dbPath)
		return repository.NewSQLiteRepository(handle), func() {
			if cerr := handle.Close(); cerr != nil {
				log.Errorw("failed to close sqlite", "err", cerr)
			}
		}, nil
	default:
		usersFile := viper.GetString("storage.users_file")
		favoritesFile := viper.GetString("storage.favorites_file")
		repos, err := repository.NewJSONRepository(usersFile, favoritesFile)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("storage_backend", "backend", "json", "users", usersFile, "favorites", favoritesFile)
		return repos, func() {}, nil
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8001"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

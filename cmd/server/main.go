package main

import (
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"movierama/internal/api/middleware"
	"movierama/internal/api/routes"
	"movierama/internal/auth"
	"movierama/internal/config"
	"movierama/internal/core/movies"
	"movierama/internal/core/users"
	"movierama/internal/core/votes"
	"movierama/internal/db/postgres"
)

func main() {
	// Optional .env for local development; real deployments set env directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal("Failed to create token issuer:", err)
	}

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize repositories and services
	userRepo := postgres.NewUserRepository(db)
	movieRepo := postgres.NewMovieRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	userService := users.NewUserService(userRepo, issuer, logger)
	movieService := movies.NewMovieService(movieRepo, logger)
	voteService := votes.NewVoteService(voteRepo, movieRepo, logger)

	authMiddleware := middleware.NewAuthMiddleware(issuer)

	routes.RegisterAuthRoutes(r, userService)
	routes.RegisterMovieRoutes(r, movieService, voteService, authMiddleware)
	routes.RegisterVoteRoutes(r, voteService, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	log.Printf("Movierama API starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/quizdeck/quizdeck/internal/api/http"
	"github.com/quizdeck/quizdeck/internal/auth"
	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/db"
	"github.com/quizdeck/quizdeck/internal/extract"
	"github.com/quizdeck/quizdeck/internal/game"
	"github.com/quizdeck/quizdeck/internal/pdf"
	"github.com/quizdeck/quizdeck/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- Store ---
	var store game.Store
	switch cfg.DBDriver {
	case "memory":
		store = game.NewInMemoryStore()
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = game.NewSQLStore(dbh, cfg.DBDriver)
	}

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	dec := pdf.NewDecoder()
	extractor := extract.New(nil)
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	r.Post("/auth/login", auth.LoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash))

	r.Group(func(pr chi.Router) {
		if cfg.EnableAuth {
			pr.Use(auth.JWTMiddleware(authSvc))
		}
		pr.Post("/games", api.UploadGameHandler(store, bs, dec, extractor, cfg.DefaultQuestionCount, cfg.MaxUploadBytes))
		pr.Get("/games", api.ListGamesHandler(store))
		pr.Get("/games/{gameID}", api.GetGameHandler(store))
	})

	log.Printf("listening on %s (db=%s, auth=%v)", cfg.HTTPAddr, cfg.DBDriver, cfg.EnableAuth)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"parcel-tracking-service/internal/adapters/backend"
	"parcel-tracking-service/internal/adapters/cache"
	"parcel-tracking-service/internal/adapters/memory"
	"parcel-tracking-service/internal/adapters/repositories"
	"parcel-tracking-service/internal/api"
	"parcel-tracking-service/internal/auth"
	"parcel-tracking-service/internal/config"
	"parcel-tracking-service/internal/ports"
	"parcel-tracking-service/internal/seed"
	"parcel-tracking-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or the in-memory fixture, the
// upstream tracking backend, Redis) behind ports and starts the HTTP server.
func main() {
	config.Load()

	port := config.Get("PORT", "8080")
	store := config.Get("STORE", "sqlite")

	fix, err := loadFixture()
	if err != nil {
		log.Fatal(err)
	}

	var (
		shipments ports.ShipmentRepository
		contacts  ports.ContactRepository
		resolver  ports.TrackingResolver
		prefs     ports.PreferenceStore
	)

	switch store {
	case "memory":
		// Single fixture store backs every port; handy for demos and tests.
		mem := memory.NewStoreFromFixture(fix)
		shipments, contacts, resolver, prefs = mem, mem, mem, mem
	case "sqlite":
		db, err := openDB(config.Get("DB_PATH", "data/app.db"))
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		// Initialize schema and seed demo data on startup for local runs.
		if err := initAndSeed(db, fix); err != nil {
			log.Fatal(err)
		}

		shipments = repositories.NewSqliteShipmentRepository(db)
		contacts = repositories.NewSqliteContactRepository(db)
		resolver = repositories.NewSqliteTrackingRepository(db)
		prefs = repositories.NewSqlitePreferenceStore(db)
	default:
		log.Fatalf("unknown STORE %q (want memory or sqlite)", store)
	}

	// When an upstream backend is configured, tracking lookups go there
	// instead of the local store; everything else stays local.
	if baseURL := os.Getenv("TRACKING_BACKEND_URL"); baseURL != "" {
		client, err := backend.NewClient(baseURL, os.Getenv("TRACKING_BACKEND_TOKEN"))
		if err != nil {
			log.Fatal(err)
		}
		resolver = client
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		resolver = cache.NewRedisTrackingCache(resolver, redis.NewClient(&redis.Options{Addr: addr}), 0)
	}

	tokens, err := buildTokens()
	if err != nil {
		log.Fatal(err)
	}

	authService := &services.AuthService{
		Users:         shipments,
		Tokens:        tokens,
		AdminEmail:    config.Get("ADMIN_EMAIL", "admin@email.com"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	router := api.NewRouter(api.Deps{
		Shipments: services.NewShipmentService(shipments),
		Tracking:  services.NewTrackingService(resolver),
		Contacts:  services.NewContactService(contacts),
		Auth:      authService,
		Prefs:     prefs,
		Verifier:  tokens,
	})

	log.Printf("Server listening addr=:%s store=%s", port, store)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// tokenAuthority issues and verifies session tokens. Both sentinel and
// JWT modes implement it.
type tokenAuthority interface {
	ports.TokenVerifier
	ports.TokenIssuer
}

func buildTokens() (tokenAuthority, error) {
	switch mode := config.Get("AUTH_MODE", "sentinel"); mode {
	case "sentinel":
		return auth.NewSentinelVerifier(os.Getenv("AUTH_SENTINEL")), nil
	case "jwt":
		cfg, err := auth.LoadJWTConfigFromEnv(time.Now)
		if err != nil {
			return nil, fmt.Errorf("buildTokens: %w", err)
		}
		return auth.NewJWT(cfg), nil
	default:
		return nil, fmt.Errorf("buildTokens: unknown AUTH_MODE %q (want sentinel or jwt)", mode)
	}
}

func loadFixture() (seed.Fixture, error) {
	if path := os.Getenv("SEED_PATH"); path != "" {
		return seed.LoadFile(path)
	}
	return seed.Load()
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, fix seed.Fixture) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFixture(db, fix); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

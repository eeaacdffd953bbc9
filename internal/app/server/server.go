package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"

	"talentnest/internal/domain/audit"
	"talentnest/internal/domain/credentials"
	"talentnest/internal/domain/documents"
	"talentnest/internal/domain/employee"
	"talentnest/internal/domain/geo"
	"talentnest/internal/domain/identity"
	"talentnest/internal/domain/leave"
	"talentnest/internal/platform/config"
	"talentnest/internal/platform/crypto"
	"talentnest/internal/platform/db"
	audithandler "talentnest/internal/transport/http/handlers/audit"
	credentialhandler "talentnest/internal/transport/http/handlers/credentials"
	documenthandler "talentnest/internal/transport/http/handlers/documents"
	employeehandler "talentnest/internal/transport/http/handlers/employees"
	identityhandler "talentnest/internal/transport/http/handlers/identity"
	leavehandler "talentnest/internal/transport/http/handlers/leave"
	onboardinghandler "talentnest/internal/transport/http/handlers/onboarding"
	referencehandler "talentnest/internal/transport/http/handlers/reference"
	"talentnest/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Client *mongo.Client
	Router http.Handler
}

// New connects to the database, prepares collections, and assembles the full
// route tree. Callers own the returned App and must Close it.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	client, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	database := client.Database(cfg.MongoDatabase)

	if cfg.EnsureSchemas {
		if err := db.EnsureSchemas(ctx, database); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
	}

	encryption, err := crypto.New(cfg.DataEncryptionKey)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	identityStore := identity.NewStore(database)
	if err := identityStore.SeedRoles(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	employeeStore := employee.NewStore(database, encryption)
	employeeService := employee.NewService(employeeStore, cfg.EmployeeNumberSeed)
	leaveStore := leave.NewStore(database)
	documentStore := documents.NewStore(database)
	auditService := audit.New(database)
	geoClient := geo.NewClient(cfg.GeoBaseURL, cfg.GeoTimeout)

	credentialService, err := credentials.NewService(database, cfg.OTPDigits)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx, nil); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		onboardinghandler.NewHandler(employeeService, identityStore, auditService).RegisterRoutes(r)
		employeehandler.NewHandler(employeeService, auditService).RegisterRoutes(r)
		identityhandler.NewHandler(identityStore, auditService).RegisterRoutes(r)
		leavehandler.NewHandler(leaveStore, auditService).RegisterRoutes(r)
		documenthandler.NewHandler(documentStore, auditService).RegisterRoutes(r)
		credentialhandler.NewHandler(credentialService, auditService).RegisterRoutes(r)
		referencehandler.NewHandler(geoClient).RegisterRoutes(r)
		audithandler.NewHandler(auditService).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return &App{Config: cfg, Client: client, Router: router}, nil
}

func (a *App) Close() {
	_ = a.Client.Disconnect(context.Background())
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}

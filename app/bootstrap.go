package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"auth-service/internal/auth"
	"auth-service/internal/observability"
)

const defaultJWTSecret = "SECRET"

type Options struct {
	LoadDotEnv bool
}

type Runtime struct {
	Handler http.Handler
	Close   func() error
}

// Build constructs every component exactly once and wires them together:
// the store, the token processor, the use-case service, the HTTP handler,
// and the middleware chain around the mux. Both entrypoints and the tests
// go through here.
func Build(options Options) (*Runtime, error) {
	if options.LoadDotEnv {
		_ = godotenv.Load()
	}

	logger := observability.NewLogger()

	if err := observability.InitSentry(os.Getenv("SENTRY_DSN"), EnvOrDefault("APP_ENV", "development")); err != nil {
		logger.Error("init_sentry_failed", map[string]any{"error": err.Error()})
	}

	secret := EnvOrDefault("JWT_SECRET", defaultJWTSecret)
	if secret == defaultJWTSecret {
		logger.Warn("jwt_secret_default", map[string]any{"hint": "set JWT_SECRET"})
	}

	processor, err := auth.NewTokenProcessor(auth.TokenOptions{
		Secret:    secret,
		Expires:   envMinutesOrDefault("JWT_EXPIRES_IN_MINUTES", 60),
		Algorithm: EnvOrDefault("JWT_ALGORITHM", "HS256"),
	})
	if err != nil {
		return nil, fmt.Errorf("init token processor: %w", err)
	}

	store := auth.NewStore()
	service := auth.NewService(store)
	service.WithUniqueUsernames(EnvBoolOrDefault("AUTH_UNIQUE_USERNAMES", false))
	handler := auth.NewHandler(service, processor)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", handler.Register)
	mux.HandleFunc("POST /auth/login", handler.Login)
	mux.Handle("GET /auth/me", auth.TokenMiddleware(http.HandlerFunc(handler.Me)))
	mux.Handle("DELETE /auth/me", auth.TokenMiddleware(http.HandlerFunc(handler.DeleteMe)))
	mux.HandleFunc("GET /health", healthHandler(store))

	root := observability.RecoverMiddleware(logger, observability.RequestLoggingMiddleware(logger, mux))

	return &Runtime{
		Handler: root,
		Close: func() error {
			observability.FlushSentry()
			return nil
		},
	}, nil
}

func healthHandler(store *auth.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"users":  store.Count(),
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func EnvOrDefault(name, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func envIntOrDefault(name string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envMinutesOrDefault(name string, fallback int) time.Duration {
	return time.Duration(envIntOrDefault(name, fallback)) * time.Minute
}

func EnvBoolOrDefault(name string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if value == "" {
		return fallback
	}

	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/meera/wardrobe-stylist/internal/closet"
	"github.com/meera/wardrobe-stylist/internal/config"
	"github.com/meera/wardrobe-stylist/internal/db"
	"github.com/meera/wardrobe-stylist/internal/llm"
	"github.com/meera/wardrobe-stylist/internal/occasions"
	"github.com/meera/wardrobe-stylist/internal/server/middleware"
	"github.com/meera/wardrobe-stylist/internal/server/ratelimit"
	"github.com/meera/wardrobe-stylist/internal/stylist"
	"github.com/meera/wardrobe-stylist/internal/uploads"
	"github.com/meera/wardrobe-stylist/internal/vision"
	"github.com/meera/wardrobe-stylist/internal/weather"
)

// Suggester runs the styling flow for one request.
type Suggester interface {
	Suggest(ctx context.Context, req stylist.Request) (*stylist.Result, error)
}

// ItemClassifier classifies an uploaded photo into wardrobe attributes.
type ItemClassifier interface {
	Classify(ctx context.Context, image []byte, format string) (*vision.Attributes, error)
}

// WeatherService fetches current weather for a city.
type WeatherService interface {
	Current(ctx context.Context, city string) (*weather.Weather, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	stylist     Suggester
	classifier  ItemClassifier
	weather     WeatherService
	uploads     *uploads.Store
	llmClient   llm.Client
	defaultCity string
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
	validator   *validator.Validate
}

// New creates a new server instance and wires its dependencies.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	llmClient, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	uploadStore, err := uploads.New(cfg.UploadsDir)
	if err != nil {
		database.Close()
		llmClient.Close()
		return nil, err
	}

	rules, err := occasions.Load()
	if err != nil {
		database.Close()
		llmClient.Close()
		return nil, fmt.Errorf("failed to load occasion rules: %w", err)
	}

	weatherClient := weather.NewClient()

	s := &Server{
		db:          database,
		classifier:  vision.NewClassifier(llmClient),
		weather:     weatherClient,
		uploads:     uploadStore,
		llmClient:   llmClient,
		defaultCity: cfg.DefaultCity,
		validator:   validator.New(),
	}
	s.stylist = stylist.New(wardrobeSource{database}, weatherClient, llmClient, rules)

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	jwtService := NewJWTService(&cfg.JWT)
	s.jwtService = jwtService
	s.authHandler = NewAuthHandler(NewOwnerService(database, &cfg.Password), jwtService)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withRateLimit(middleware.RequestLogger(s.withCORS(s.routes(), cfg.CORSOrigins))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Profiles
	mux.HandleFunc("GET /profiles", s.handleListProfiles)
	mux.HandleFunc("POST /profiles", s.handleCreateProfile)
	mux.Handle("DELETE /profiles/{id}",
		middleware.RequireOwner(s.jwtService.AsTokenValidator())(http.HandlerFunc(s.handleDeleteProfile)))

	// Wardrobe items
	mux.HandleFunc("GET /items", s.handleListItems)
	mux.HandleFunc("POST /items", s.handleCreateItem)
	mux.HandleFunc("POST /items/analyze", s.handleAnalyzeItem)
	mux.HandleFunc("DELETE /items/{name}", s.handleDeleteItem)
	mux.HandleFunc("GET /profiles/{id}/items", s.handleListProfileItems)

	// Favorites
	mux.HandleFunc("POST /favorites", s.handleSaveFavorite)
	mux.HandleFunc("GET /profiles/{id}/favorites", s.handleListFavorites)
	mux.HandleFunc("DELETE /favorites/{id}", s.handleDeleteFavorite)

	// Styling and weather
	mux.HandleFunc("POST /style", s.handleStyle)
	mux.HandleFunc("GET /weather/{city}", s.handleWeather)

	// Owner authentication
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Stored item photos
	mux.Handle("GET /uploads/",
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploads.Dir()))))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-stop
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		s.llmClient.Close()
	}
	s.db.Close()
	log.Info().Msg("server stopped")
	return nil
}

// wardrobeSource adapts db items to the styling flow's closet items.
type wardrobeSource struct {
	db *db.DB
}

func (w wardrobeSource) ItemsByProfile(ctx context.Context, profileID uuid.UUID) ([]closet.Item, error) {
	items, err := w.db.ListItemsByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	wardrobe := make([]closet.Item, len(items))
	for i, item := range items {
		wardrobe[i] = closet.Item{Name: item.Name, Category: item.Category}
	}
	return wardrobe, nil
}

// withCORS adds CORS headers. An empty origin list allows any origin.
func (s *Server) withCORS(next http.Handler, origins []string) http.Handler {
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(allowed) == 0:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("error encoding JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP from RemoteAddr; X-Forwarded-For is deliberately not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

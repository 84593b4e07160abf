package server

import (
	"fmt"
	"net/http"
	"time"

	"sjsm-storefront/internal/catalog"
	"sjsm-storefront/internal/config"
	custommiddleware "sjsm-storefront/internal/middleware"
	"sjsm-storefront/internal/repository"
	"sjsm-storefront/internal/service"
	"sjsm-storefront/internal/sheets"
	"sjsm-storefront/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

// NewServer wires the storefront: catalog, carts, checkout, sessions, orders
// and the support bot, all behind one chi router.
func NewServer(cfg *config.Config, logger *zap.Logger, redisClient *redis.Client) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.Recovery(logger))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Stores
	catalogStore := catalog.NewSeededStore()
	userRepo := repository.NewUserRepository(redisClient)
	sessionRepo := repository.NewSessionRepository(redisClient)
	orderRepo := repository.NewOrderRepository(redisClient)

	// Services
	cartService := service.NewCartService()
	sessionService := service.NewSessionService(userRepo, sessionRepo, cartService, cfg.Session.Secret, cfg.Session.TokenTTL)
	sheetsClient := sheets.NewClient(cfg.Sheets.URL, cfg.Sheets.Timeout, logger)
	checkoutService := service.NewCheckoutService(
		cartService, userRepo, sessionRepo, orderRepo,
		sheetsClient, cfg.Checkout.ProcessingDelay, logger,
	)
	supportService := service.NewSupportService(cfg.Support.ReplyDelay)

	// Middleware shared across handlers
	sessionMiddleware := custommiddleware.SessionMiddleware(cfg.Session.Secret, logger)
	rateLimiter := custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
		Window:            cfg.RateLimit.Window,
		KeyPrefix:         "sjsm:ratelimit",
	}, logger)

	// Handlers
	transport.NewCatalogHandler(catalogStore, logger).RegisterRoutes(router)
	transport.NewCartHandler(cartService, catalogStore, logger).RegisterRoutes(router, sessionMiddleware)
	transport.NewCheckoutHandler(checkoutService, logger).RegisterRoutes(router, sessionMiddleware)
	transport.NewSessionHandler(sessionService, logger).RegisterRoutes(router, sessionMiddleware, rateLimiter)
	transport.NewOrderHandler(orderRepo, logger).RegisterRoutes(router, sessionMiddleware)
	transport.NewSupportHandler(supportService, logger).RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  redisClient,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}

package api

import (
	"net/http"
	"time"

	"github.com/AlexZinkM/walletguard/internal/biometric"
	"github.com/AlexZinkM/walletguard/internal/handler"
	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/pinservice"
	"github.com/AlexZinkM/walletguard/wallet"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Deps are the services behind the API. Pins is nil when PIN verification is
// delegated to the backend; Relay and Bridge are nil without a biometric relay.
// Every wallet, transfer, PIN and biometric route requires ShellToken as a bearer token.
type Deps struct {
	Wallet      *wallet.Service
	Pins        *pinservice.Service
	Relay       *biometric.Relay
	Bridge      *biometric.Bridge
	CORSOrigins []string
	ShellToken  string
}

// SetupRouter sets up router with handlers
func SetupRouter(d Deps) http.Handler {
	walletHandler := handler.NewWalletHandler(d.Wallet)
	transferHandler := handler.NewTransferHandler(d.Wallet)

	m := chi.NewMux()
	m.Use(middleware.RealIP)
	m.Use(middleware.RequestID)
	m.Use(requestLogger)
	m.Use(middleware.Recoverer)
	m.Use(cors.New(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	// Swagger UI
	m.Get("/swagger/*", httpSwagger.WrapHandler)
	m.Handle("/metrics", promhttp.Handler())

	m.Group(func(m chi.Router) {
		m.Use(requireShellToken(d.ShellToken))

		// Wallet endpoints
		m.Route("/wallet", func(r chi.Router) {
			r.Get("/", walletHandler.Get)
			r.Post("/generate", walletHandler.Generate)
			r.Post("/export", walletHandler.Export)
			r.Post("/import", walletHandler.Import)
			r.Post("/rekey", walletHandler.Rekey)
			r.Post("/paycode", walletHandler.PayCode)
		})

		// Transfer authorization endpoints
		m.Route("/transfers", func(r chi.Router) {
			r.Post("/", transferHandler.Create)
			r.Get("/{id}", transferHandler.Get)
			r.Delete("/{id}", transferHandler.Cancel)
			r.Post("/{id}/proof", transferHandler.Proof)
			r.Post("/{id}/pin", transferHandler.Pin)
			r.Post("/{id}/confirm", transferHandler.Confirm)
			r.Post("/{id}/execute", transferHandler.Execute)
		})

		if d.Pins != nil {
			pinHandler := handler.NewPinHandler(d.Pins)
			m.Route("/pin", func(r chi.Router) {
				r.Post("/", pinHandler.Set)
				r.Put("/", pinHandler.Change)
				r.Post("/verify", pinHandler.Verify)
			})
		}

		if d.Relay != nil && d.Bridge != nil {
			bioHandler := handler.NewBiometricHandler(d.Relay, d.Bridge)
			m.Route("/biometric", func(r chi.Router) {
				r.Get("/capability", bioHandler.Capability)
				r.Put("/capability", bioHandler.SetCapability)
				r.Get("/assertions", bioHandler.Pending)
				r.Post("/assertions/{id}", bioHandler.Resolve)
			})
		}
	})

	return m
}

// requestLogger puts a request-scoped logger into the context and logs one line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		l := logger.L().With(
			logger.Component("api"),
			logger.RequestID(middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(logger.ToContext(r.Context(), l)))
		l.Info("request",
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Package http serves the REST API under /api with gin.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/services"
	"github.com/gin-gonic/gin"
)

// TokenVerifier turns a bearer token into the caller's scope.
type TokenVerifier interface {
	Verify(token string) (access.Scope, error)
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	engine          *gin.Engine
	logger          logging.Logger
}

func NewHTTPServer(address string, shutdownTimeout time.Duration, l logging.Logger, svc *services.Services, verifier TokenVerifier) *HTTPServer {
	logger := l.With("module", "http_server")
	return &HTTPServer{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		engine:          newRouter(logger, svc, verifier),
		logger:          logger,
	}
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newRouter(logger logging.Logger, svc *services.Services, verifier TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), accessLog(logger), recovery(logger))

	h := &handler{svc: svc}

	r.GET("/health", h.health)

	root := r.Group("/api")

	authGroup := root.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)

	private := root.Group("", authRequired(verifier))

	users := private.Group("/users/me")
	users.GET("", h.profile)
	users.PUT("", h.updateProfile)
	users.DELETE("", h.deleteAccount)
	users.POST("/change-password", h.changePassword)

	readings := private.Group("/readings")
	readings.GET("", h.listReadings)
	readings.GET("/:id", h.getReading)
	readings.POST("", h.createReading)
	readings.PUT("/:id", h.updateReading)
	readings.DELETE("/:id", h.deleteReading)

	bills := private.Group("/bills")
	bills.GET("/unpaid", h.unpaidBills)
	admin := bills.Group("", adminOnly())
	admin.PATCH("/:id/pay", h.markPaid)
	admin.PATCH("/:id/unpay", h.markUnpaid)
	admin.POST("/:id/send-reminder", h.sendReminder)
	admin.POST("/send-all-reminders", h.sendAllReminders)

	reports := private.Group("/reports")
	reports.GET("/annual", h.annualReport)
	reports.POST("/annual/export", h.exportAnnualReport)

	return r
}

package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sadmanCR7/aeropulse/api"
	"github.com/sadmanCR7/aeropulse/config"
	"github.com/sadmanCR7/aeropulse/internal/ratelimit"
	"github.com/sadmanCR7/aeropulse/internal/service/accounts"
	"github.com/sadmanCR7/aeropulse/internal/service/booking"
	"github.com/sadmanCR7/aeropulse/internal/service/explore"
	"github.com/sadmanCR7/aeropulse/internal/service/flights"
	"github.com/sadmanCR7/aeropulse/internal/service/notifications"
	"github.com/sadmanCR7/aeropulse/internal/service/reviews"
)

// Services bundles everything the HTTP surface exposes.
type Services struct {
	Flights       flights.FlightUseCase
	Bookings      booking.BookingUseCase
	Explore       explore.ExploreUseCase
	Reviews       reviews.ReviewUseCase
	Accounts      accounts.AccountUseCase
	Notifications notifications.NotificationUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, svcs Services) error {
	router := NewRouter(cfg, svcs)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func NewRouter(cfg *config.Config, svcs Services) *gin.Engine {
	router := gin.Default()

	limiter := ratelimit.NewClientLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	router.Use(limiter.Middleware())

	flightHandler := api.NewFlightHandler(svcs.Flights)
	flightHandler.Register(router.Group("/flights"))
	flightHandler.RegisterAirports(router.Group("/airports"))

	api.NewReviewHandler(svcs.Reviews).Register(router.Group("/flights"))
	api.NewBookingHandler(svcs.Bookings).Register(router.Group("/bookings"))
	api.NewExploreHandler(svcs.Explore).Register(router.Group("/explore"))
	api.NewAccountHandler(svcs.Accounts).Register(router.Group("/accounts"))
	api.NewNotificationHandler(svcs.Notifications).Register(router.Group("/notifications"))

	return router
}

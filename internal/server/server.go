package server

import (
	"context"
	"fmt"
	"net/http"
	"paypal-subscribe/internal/asset"
	"paypal-subscribe/internal/config"
	"paypal-subscribe/internal/handler"
	"paypal-subscribe/internal/repository"
	"paypal-subscribe/internal/service"
	"paypal-subscribe/internal/subscribe"
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo                *echo.Echo
	subscriptionHandler *handler.SubscriptionHandler
	assets              config.Assets
}

func NewServer(cfg *config.Config, planRepo repository.PlanRepository, logger echo.Logger) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Logger = logger

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Errorf("%s %s %d %s: %v", v.Method, v.URI, v.Status, v.Latency, v.Error)
				return nil
			}
			logger.Infof("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	forms, err := subscribe.NewFormBuilder(
		subscribe.Config{
			Endpoint: cfg.Paypal.URL,
			Fields:   formFields(cfg.Paypal.Fields),
		},
		newRouteResolver(e, cfg.BaseURL),
		asset.NewResolver(cfg.Assets.Prefix, cfg.Assets.Host),
	)
	if err != nil {
		return nil, fmt.Errorf("paypal form config: %w", err)
	}

	subscriptionService := service.NewSubscriptionService(forms, planRepo)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService, cfg.Paypal.Image, cfg.Paypal.ImageAlt)

	s := &Server{
		echo:                e,
		subscriptionHandler: subscriptionHandler,
		assets:              cfg.Assets,
	}

	s.setupRoutes()
	return s, nil
}

// formFields fills in the callback routes this server provides when the
// configuration does not name others, and item_number so plan pages can
// pass their id through to PayPal.
func formFields(configured config.Fields) []subscribe.Field {
	fields := slices.Clone(configured).
		Default("item_number", "").
		Default(subscribe.ReturnKey, handler.RouteSubscriptionReturn).
		Default(subscribe.CancelReturnKey, handler.RouteSubscriptionCancel).
		Default(subscribe.NotifyURLKey, handler.RoutePaypalNotify)

	out := make([]subscribe.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, subscribe.Field{Name: f.Name, Value: f.Value})
	}
	return out
}

func (s *Server) setupRoutes() {
	s.echo.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if s.assets.Host == "" && s.assets.Dir != "" {
		s.echo.Static(s.assets.Prefix, s.assets.Dir)
	}

	h := s.subscriptionHandler
	s.echo.GET("/api/plans/:id/form", h.PlanForm)
	s.echo.GET("/", h.ListPlans).Name = handler.RoutePlans
	s.echo.GET("/plans/:id", h.ShowPlan).Name = handler.RoutePlan

	// -------- paypal callbacks --------
	paypal := s.echo.Group("/paypal")
	paypal.GET("/return", h.HandleReturn).Name = handler.RouteSubscriptionReturn
	paypal.POST("/return", h.HandleReturn) // rm=2 posts the buyer back
	paypal.GET("/cancel", h.HandleCancel).Name = handler.RouteSubscriptionCancel
	paypal.POST("/notify", h.HandleNotify).Name = handler.RoutePaypalNotify
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

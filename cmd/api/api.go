package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrBaoN/RestaurantDashboard/docs"
	"github.com/MrBaoN/RestaurantDashboard/internal/queue"
	"github.com/MrBaoN/RestaurantDashboard/internal/ratelimiter"
	"github.com/MrBaoN/RestaurantDashboard/internal/repo"
	"github.com/MrBaoN/RestaurantDashboard/internal/service"
	"github.com/MrBaoN/RestaurantDashboard/internal/store/mongo"
	"github.com/MrBaoN/RestaurantDashboard/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config           config
	logger           *zap.SugaredLogger
	rateLimiter      ratelimiter.Limiter
	storage          *mongo.Storage
	broker           queue.Broker
	employeeRepo     repo.EmployeeRepository
	orderService     *service.OrderService
	menuService      *service.MenuService
	inventoryService *service.InventoryService
	reportService    *service.ReportService
	orderWorker      *worker.OrderEventWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.rateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", app.placeOrderHandler)
			r.Put("/advance", app.advanceLaneHandler)
			r.Get("/kitchen", app.kitchenViewHandler)
			r.Get("/board", app.boardViewHandler)
			r.Get("/{order_number}/audit", app.orderAuditHandler)
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", app.listMenuHandler)
			r.Post("/", app.createMenuItemHandler)
			r.Get("/{menu_id}", app.getMenuItemHandler)
			r.Put("/{menu_id}", app.updateMenuItemHandler)
			r.Delete("/{menu_id}", app.deactivateMenuItemHandler)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", app.listInventoryHandler)
			r.Post("/", app.createInventoryItemHandler)
			r.Get("/{inventory_id}", app.getInventoryItemHandler)
			r.Put("/{inventory_id}", app.updateInventoryItemHandler)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", app.listEmployeesHandler)
			r.Post("/", app.createEmployeeHandler)
			r.Delete("/{employee_id}", app.deactivateEmployeeHandler)
		})

		r.Get("/reports/closing", app.closingReportHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) rateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Restaurant Dashboard"
	docs.SwaggerInfo.Description = "Point-of-sale and back-office API for a single restaurant"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.orderWorker != nil {
		if err := app.orderWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order event worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.orderWorker != nil {
			app.orderWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

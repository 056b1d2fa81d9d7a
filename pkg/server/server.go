package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	planhandlers "github.com/revlytic/bplan/pkg/handlers/plan"
	planservice "github.com/revlytic/bplan/pkg/services/plan"

	bplanmiddleware "github.com/revlytic/bplan/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Plans planservice.ManagementService
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires every API route onto a fresh chi router.
func ConfigureRouter(logger *zerolog.Logger, deps Dependencies) *chi.Mux {
	planHandler := planhandlers.NewHandler(deps.Plans)

	router := chi.NewRouter()

	router.Use(bplanmiddleware.Logger(logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/projection/preview", planHandler.PreviewProjection)

		r.Route("/plans", func(r chi.Router) {
			r.Post("/", planHandler.CreatePlan)
			r.Get("/", planHandler.ListPlans)

			r.Route("/{plan}", func(r chi.Router) {
				r.Get("/", planHandler.GetPlan)
				r.Put("/", planHandler.UpdatePlan)
				r.Delete("/", planHandler.DeletePlan)

				r.Get("/years", planHandler.ListYears)
				r.Put("/years/{year}", planHandler.UpsertYear)
				r.Delete("/years/{year}", planHandler.DeleteYear)

				r.Get("/projection", planHandler.GetProjection)
				r.Get("/export", planHandler.ExportPlan)
				r.Post("/share", planHandler.CreateShareLink)
			})
		})

		r.Get("/shared/{token}", planHandler.GetSharedProjection)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(&logger, config.Dependencies)

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

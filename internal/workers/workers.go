package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/service"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers builds the background workers enabled by cfg. The recorder
// workers are added only when reading history storage is enabled.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	recorder := services.RecorderService
	if !recorder.Enabled() {
		logger.Info().Msg("reading history is disabled, recorder workers are not started")
		return w
	}

	if cfg.PollInterval > 0 {
		w.workers = append(w.workers, NewPoller(recorder, cfg.PollInterval, logger))
	}
	if cfg.Retention > 0 {
		w.workers = append(w.workers, NewPruner(recorder, cfg.Retention, logger))
	}

	return w
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run runs every worker in its own goroutine and blocks until all of them
// have returned. The first worker error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(w.logger.WithContext(ctx))

	for _, worker := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			defer w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")

			if err := worker.Run(ctx); err != nil {
				return fmt.Errorf("worker %s: %w", worker.Name(), err)
			}
			return nil
		})
	}

	return g.Wait()
}

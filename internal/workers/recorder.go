package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/service"
)

// Poller records a reading of every gateway each interval. Failed rounds
// are logged and retried on the next tick.
type Poller struct {
	recorder service.RecorderService
	interval time.Duration

	logger *logger.Logger
}

func NewPoller(recorder service.RecorderService, interval time.Duration, logger *logger.Logger) *Poller {
	return &Poller{recorder: recorder, interval: interval, logger: logger}
}

func (p *Poller) Name() string { return "poller" }

// Run records once immediately and then on every tick.
func (p *Poller) Run(ctx context.Context) error {
	return every(ctx, p.interval, func(ctx context.Context) {
		saved, err := p.recorder.RecordAll(ctx)
		if err != nil && ctx.Err() == nil {
			p.logger.Err(err).Str("func", "*Poller.Run").Int("saved", saved).Msg("error recording readings")
			return
		}
		p.logger.Debug().Str("func", "*Poller.Run").Int("saved", saved).Msg("recorded readings")
	})
}

// Pruner deletes readings older than the retention period. It runs once at
// start and then every retention/24, at most hourly.
type Pruner struct {
	recorder  service.RecorderService
	retention time.Duration
	interval  time.Duration

	logger *logger.Logger
}

func NewPruner(recorder service.RecorderService, retention time.Duration, logger *logger.Logger) *Pruner {
	interval := min(retention/24, time.Hour)
	if interval <= 0 {
		interval = retention
	}
	return &Pruner{recorder: recorder, retention: retention, interval: interval, logger: logger}
}

func (p *Pruner) Name() string { return "pruner" }

func (p *Pruner) Run(ctx context.Context) error {
	return every(ctx, p.interval, func(ctx context.Context) {
		deleted, err := p.recorder.Prune(ctx, p.retention)
		if err != nil && ctx.Err() == nil {
			p.logger.Err(err).Str("func", "*Pruner.Run").Msg("error pruning readings")
			return
		}
		if deleted > 0 {
			p.logger.Info().Str("func", "*Pruner.Run").Int64("deleted", deleted).Msg("pruned readings")
		}
	})
}

// every calls fn right away and then on each tick until ctx is done.
func every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		fn(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

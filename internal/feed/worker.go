package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/helmy2/go-hijri-picker/internal/config"
)

// Publisher receives freshly generated feeds.
type Publisher interface {
	Update(data []byte)
}

// Worker regenerates the feed on a fixed interval and publishes it.
type Worker struct {
	Generator *Generator
	Publisher Publisher
	Window    Window
	Interval  time.Duration
}

// Run publishes a first feed immediately, then on every tick until ctx is
// cancelled.
func (w *Worker) Run(ctx context.Context) {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	interval := w.Interval
	if interval <= 0 {
		interval = config.FeedRefreshInterval
	}

	w.refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, interval)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *Worker) refresh(ctx context.Context) {
	data, _, err := w.Generator.Generate(ctx, w.Window)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error(config.ErrFeedGenerate,
				config.LogKeyComponent, config.CompWorker,
				config.LogKeyError, err,
			)
		}
		return
	}
	w.Publisher.Update(data)
}

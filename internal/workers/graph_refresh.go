package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/hilexa-hlxa/SafeRoute/internal/routing"
	"github.com/hilexa-hlxa/SafeRoute/pkg/logger"
)

// GraphRefresher periodically reloads the road graph from disk and swaps
// it into the shared holder. In-flight route computations keep the graph
// they started with.
type GraphRefresher struct {
	logger   *slog.Logger
	holder   *routing.Holder
	path     string
	interval time.Duration
}

func NewGraphRefresher(log *slog.Logger, holder *routing.Holder, path string, interval time.Duration) *GraphRefresher {
	return &GraphRefresher{
		logger:   log,
		holder:   holder,
		path:     path,
		interval: interval,
	}
}

func (w *GraphRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *GraphRefresher) refresh() {
	g, err := routing.LoadFile(w.path)
	if err != nil {
		// Keep serving the previous graph.
		w.logger.Error("graph reload failed", logger.Err(err), slog.String("path", w.path))
		return
	}

	w.holder.Swap(g)
	w.logger.Info("road graph reloaded",
		slog.String("path", w.path),
		slog.Int("nodes", g.NumNodes()),
		slog.Int("edges", g.NumEdges()),
	)
}

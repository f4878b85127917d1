// Package persist connects the in-memory list store to durable
// storage: every mutation (re)starts a debounce timer, and when the
// timer fires uninterrupted the whole collection is written wholesale.
// Intermediate states inside one window are never separately persisted.
package persist

import (
	"log/slog"
	"time"

	"github.com/mattjh/shoplist/internal/liststore"
	"github.com/mattjh/shoplist/internal/metrics"
	"github.com/mattjh/shoplist/internal/storage"
)

// DefaultWindow is the quiescence period after the last mutation
// before a save is issued.
const DefaultWindow = 400 * time.Millisecond

// Pipeline observes a list store and schedules coalesced saves.
type Pipeline struct {
	store     *liststore.Store
	lists     *storage.Lists
	debouncer *Debouncer
	logger    *slog.Logger
}

// NewPipeline wires the pipeline to the store. It subscribes
// immediately; mutations from then on schedule saves.
func NewPipeline(store *liststore.Store, lists *storage.Lists, window time.Duration, logger *slog.Logger) *Pipeline {
	p := &Pipeline{
		store:  store,
		lists:  lists,
		logger: logger,
	}
	p.debouncer = NewDebouncer(window, p.save)
	store.Subscribe(p.debouncer.Trigger)
	return p
}

func (p *Pipeline) save() {
	p.lists.Save(p.store.Snapshot())
	if err := p.lists.LastError(); err != nil {
		metrics.SavesTotal.WithLabelValues("error").Inc()
		return
	}
	metrics.SavesTotal.WithLabelValues("ok").Inc()
	p.logger.Debug("lists persisted")
}

// Flush writes any pending save immediately. Called at shutdown so a
// mutation inside the final window is not lost with the process.
func (p *Pipeline) Flush() {
	p.debouncer.Flush()
}

// Stop cancels any pending save without writing.
func (p *Pipeline) Stop() {
	p.debouncer.Stop()
}

package storage

import (
	"log/slog"
	"sync"

	"github.com/mattjh/shoplist/internal/model"
)

// ListsKey is the fixed blob key holding the entire list collection.
// The _V1 suffix doubles as the schema tag: a future shape change gets
// a new key and a migration here.
const ListsKey = "SHOPPING_LISTS_V1"

// Lists persists the full shopping-list collection under ListsKey.
// Write failures are logged and swallowed: the in-memory state is the
// session's ground truth and a failed background save never reaches
// the caller. The last failure stays observable via LastError.
type Lists struct {
	store  *Store
	logger *slog.Logger

	mu      sync.Mutex
	lastErr error
}

func NewLists(store *Store, logger *slog.Logger) *Lists {
	return &Lists{store: store, logger: logger}
}

// Save writes the collection wholesale, overwriting any prior value.
func (l *Lists) Save(lists []model.ShoppingList) {
	err := l.store.Put(ListsKey, lists)

	l.mu.Lock()
	l.lastErr = err
	l.mu.Unlock()

	if err != nil {
		l.logger.Warn("failed to save lists", "error", err)
	}
}

// Load reads the collection once at startup. Absence and any read or
// decode failure both yield nil: the caller hydrates from nothing.
func (l *Lists) Load() []model.ShoppingList {
	var lists []model.ShoppingList
	ok, err := l.store.Get(ListsKey, &lists)
	if err != nil {
		l.logger.Warn("failed to load lists", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return lists
}

// LastError returns the error from the most recent Save, or nil if it
// succeeded. Current callers only log it; it exists so the
// swallow-and-log contract stays testable.
func (l *Lists) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Package liststore holds the in-memory shopping-list collection and
// its mutation operations. Every operation is total: referencing an id
// that does not exist leaves the state unchanged and reports false,
// never an error. Handlers run concurrently, so mutations are
// serialized behind one mutex; dispatch order is lock order.
package liststore

import (
	"sync"

	"github.com/mattjh/shoplist/internal/metrics"
	"github.com/mattjh/shoplist/internal/model"
)

// Store is the single source of truth for the current session. The
// persisted blob is only a best-effort backup of what lives here.
type Store struct {
	mu    sync.Mutex
	lists []model.ShoppingList
	subs  []func()
}

func New() *Store {
	return &Store{}
}

// Subscribe registers fn to run after every mutation, including
// SetLists. Observers run outside the store lock, in registration
// order, on the mutating goroutine.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notify(op string) {
	metrics.MutationsTotal.WithLabelValues(op).Inc()

	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Snapshot returns a deep copy of the collection. Mutating the result
// never touches store state.
func (s *Store) Snapshot() []model.ShoppingList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLists(s.lists)
}

// GetList returns a deep copy of the list with the given id, or nil.
func (s *Store) GetList(id string) *model.ShoppingList {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ID == id {
			l := copyList(s.lists[i])
			return &l
		}
	}
	return nil
}

// SetLists replaces the collection wholesale. Used only at hydration;
// the payload is trusted as-is and bypasses validation.
func (s *Store) SetLists(lists []model.ShoppingList) {
	s.mu.Lock()
	s.lists = copyLists(lists)
	s.mu.Unlock()
	s.notify("set_lists")
}

// AddList prepends the list: the collection is ordered newest-first.
func (s *Store) AddList(list model.ShoppingList) {
	s.mu.Lock()
	s.lists = append([]model.ShoppingList{copyList(list)}, s.lists...)
	s.mu.Unlock()
	s.notify("add_list")
}

// UpdateListTitle replaces the title of the named list.
func (s *Store) UpdateListTitle(id, title string) bool {
	s.mu.Lock()
	found := false
	for i := range s.lists {
		if s.lists[i].ID == id {
			s.lists[i].Title = title
			found = true
			break
		}
	}
	s.mu.Unlock()
	s.notify("update_list_title")
	return found
}

// DeleteList removes the named list; embedded items go with it.
func (s *Store) DeleteList(id string) bool {
	s.mu.Lock()
	found := false
	kept := s.lists[:0]
	for _, l := range s.lists {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	s.lists = kept
	s.mu.Unlock()
	s.notify("delete_list")
	return found
}

// AddItem prepends item to the named list's items (newest-first).
func (s *Store) AddItem(listID string, item model.Item) bool {
	s.mu.Lock()
	found := false
	for i := range s.lists {
		if s.lists[i].ID == listID {
			s.lists[i].Items = append([]model.Item{copyItem(item)}, s.lists[i].Items...)
			found = true
			break
		}
	}
	s.mu.Unlock()
	s.notify("add_item")
	return found
}

// UpdateItem replaces the item with item.ID in the named list,
// preserving its position.
func (s *Store) UpdateItem(listID string, item model.Item) bool {
	s.mu.Lock()
	found := false
	for i := range s.lists {
		if s.lists[i].ID != listID {
			continue
		}
		for j := range s.lists[i].Items {
			if s.lists[i].Items[j].ID == item.ID {
				s.lists[i].Items[j] = copyItem(item)
				found = true
				break
			}
		}
		break
	}
	s.mu.Unlock()
	s.notify("update_item")
	return found
}

// DeleteItem removes the named item from the named list.
func (s *Store) DeleteItem(listID, itemID string) bool {
	s.mu.Lock()
	found := false
	for i := range s.lists {
		if s.lists[i].ID != listID {
			continue
		}
		kept := s.lists[i].Items[:0]
		for _, it := range s.lists[i].Items {
			if it.ID == itemID {
				found = true
				continue
			}
			kept = append(kept, it)
		}
		s.lists[i].Items = kept
		break
	}
	s.mu.Unlock()
	s.notify("delete_item")
	return found
}

// ToggleItemChecked flips the checked flag on the named item.
func (s *Store) ToggleItemChecked(listID, itemID string) bool {
	s.mu.Lock()
	found := false
	for i := range s.lists {
		if s.lists[i].ID != listID {
			continue
		}
		for j := range s.lists[i].Items {
			if s.lists[i].Items[j].ID == itemID {
				s.lists[i].Items[j].Checked = !s.lists[i].Items[j].Checked
				found = true
				break
			}
		}
		break
	}
	s.mu.Unlock()
	s.notify("toggle_item_checked")
	return found
}

// ToggleFavorite flips the favorite flag on the named list. Item order
// and contents are untouched.
func (s *Store) ToggleFavorite(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.lists {
		if s.lists[i].ID == id {
			s.lists[i].IsFavorite = !s.lists[i].IsFavorite
			found = true
			break
		}
	}
	s.mu.Unlock()
	s.notify("toggle_favorite")
	return found
}

func copyLists(lists []model.ShoppingList) []model.ShoppingList {
	if lists == nil {
		return nil
	}
	out := make([]model.ShoppingList, len(lists))
	for i, l := range lists {
		out[i] = copyList(l)
	}
	return out
}

func copyList(l model.ShoppingList) model.ShoppingList {
	items := make([]model.Item, len(l.Items))
	for i, it := range l.Items {
		items[i] = copyItem(it)
	}
	l.Items = items
	return l
}

func copyItem(it model.Item) model.Item {
	if it.Description != nil {
		d := *it.Description
		it.Description = &d
	}
	if it.Price != nil {
		p := *it.Price
		it.Price = &p
	}
	if it.PhotoURI != nil {
		u := *it.PhotoURI
		it.PhotoURI = &u
	}
	return it
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mattjh/shoplist/internal/liststore"
	"github.com/mattjh/shoplist/internal/model"
	"github.com/mattjh/shoplist/internal/uid"
	"github.com/mattjh/shoplist/internal/validate"
	ws "github.com/mattjh/shoplist/internal/websocket"
)

type ItemHandler struct {
	store  *liststore.Store
	hub    *ws.Hub
	logger *slog.Logger
}

func NewItemHandler(store *liststore.Store, hub *ws.Hub, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{store: store, hub: hub, logger: logger}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("list_id")

	var req validate.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	fields, errs := validate.Item(req)
	if errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	item := model.Item{
		ID:          uid.New("item"),
		Name:        fields.Name,
		Category:    fields.Category,
		Description: fields.Description,
		Price:       fields.Price,
		PhotoURI:    fields.PhotoURI,
		Quantity:    fields.Quantity,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if !h.store.AddItem(listID, item) {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}
	h.hub.Broadcast(itemMessage("created", listID, item.ID))

	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("list_id")
	itemID := r.PathValue("id")

	existing := h.findItem(listID, itemID)
	if existing == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	var req validate.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	fields, errs := validate.Item(req)
	if errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	// Identity, creation time, and checked state survive an edit.
	item := model.Item{
		ID:          existing.ID,
		Name:        fields.Name,
		Category:    fields.Category,
		Description: fields.Description,
		Price:       fields.Price,
		PhotoURI:    fields.PhotoURI,
		Quantity:    fields.Quantity,
		Checked:     existing.Checked,
		CreatedAt:   existing.CreatedAt,
	}
	if !h.store.UpdateItem(listID, item) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	h.hub.Broadcast(itemMessage("updated", listID, itemID))

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("list_id")
	itemID := r.PathValue("id")

	if !h.store.DeleteItem(listID, itemID) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	h.logger.Info("item deleted", "list_id", listID, "id", itemID)
	h.hub.Broadcast(itemMessage("deleted", listID, itemID))

	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) ToggleChecked(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("list_id")
	itemID := r.PathValue("id")

	if !h.store.ToggleItemChecked(listID, itemID) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	h.hub.Broadcast(itemMessage("checked", listID, itemID))

	item := h.findItem(listID, itemID)
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) findItem(listID, itemID string) *model.Item {
	list := h.store.GetList(listID)
	if list == nil {
		return nil
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			return &list.Items[i]
		}
	}
	return nil
}

func itemMessage(action, listID, itemID string) ws.Message {
	msg := ws.NewMessage("item", action, itemID, nil)
	msg.ListID = listID
	return msg
}

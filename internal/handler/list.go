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

type ListHandler struct {
	store  *liststore.Store
	hub    *ws.Hub
	logger *slog.Logger
}

func NewListHandler(store *liststore.Store, hub *ws.Hub, logger *slog.Logger) *ListHandler {
	return &ListHandler{store: store, hub: hub, logger: logger}
}

type listTitleRequest struct {
	Title string `json:"title"`
}

func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists := h.store.Snapshot()
	if lists == nil {
		lists = []model.ShoppingList{}
	}
	writeJSON(w, http.StatusOK, lists)
}

func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	list := h.store.GetList(r.PathValue("id"))
	if list == nil {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req listTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	title, errs := validate.ListTitle(req.Title)
	if errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	list := model.ShoppingList{
		ID:        uid.New("list"),
		Title:     title,
		CreatedAt: time.Now().UnixMilli(),
		Items:     []model.Item{},
	}
	h.store.AddList(list)
	h.hub.Broadcast(ws.NewMessage("list", "created", list.ID, nil))

	writeJSON(w, http.StatusCreated, list)
}

func (h *ListHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req listTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	title, errs := validate.ListTitle(req.Title)
	if errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	if !h.store.UpdateListTitle(id, title) {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}
	h.hub.Broadcast(ws.NewMessage("list", "updated", id, nil))

	writeJSON(w, http.StatusOK, h.store.GetList(id))
}

func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !h.store.DeleteList(id) {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}
	h.logger.Info("list deleted", "id", id)
	h.hub.Broadcast(ws.NewMessage("list", "deleted", id, nil))

	w.WriteHeader(http.StatusNoContent)
}

func (h *ListHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !h.store.ToggleFavorite(id) {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}
	h.hub.Broadcast(ws.NewMessage("list", "favorited", id, nil))

	writeJSON(w, http.StatusOK, h.store.GetList(id))
}

package handlers

import (
	"net/http"

	"github.com/hongminglow/finance-be/internal/http/respond"
	"github.com/hongminglow/finance-be/internal/middleware"
	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/models/dto"
	"github.com/hongminglow/finance-be/internal/storage"
)

// AssetHandler exposes CRUD over the caller's assets.
type AssetHandler struct {
	store storage.AssetStore
}

// NewAssetHandler constructs the handler.
func NewAssetHandler(store storage.AssetStore) *AssetHandler {
	return &AssetHandler{store: store}
}

// Register attaches asset routes to the mux.
func (h *AssetHandler) Register(mux *http.ServeMux, gate *middleware.Gate) {
	mux.Handle("GET /assets", gate.Require(h.handleList))
	mux.Handle("POST /assets", gate.Require(h.handleCreate))
	mux.Handle("GET /assets/{id}", gate.Require(h.handleGet))
	mux.Handle("PUT /assets/{id}", gate.Require(h.handleUpdate))
	mux.Handle("DELETE /assets/{id}", gate.Require(h.handleDelete))
}

func (h *AssetHandler) handleList(w http.ResponseWriter, r *http.Request, user models.User) {
	assets, err := h.store.ListAssets(r.Context(), user.ID)
	if err != nil {
		respond.Fail(w, err, "list assets")
		return
	}
	respond.JSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) handleGet(w http.ResponseWriter, r *http.Request, user models.User) {
	asset, err := h.store.GetAsset(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		respond.Fail(w, err, "Asset")
		return
	}
	respond.JSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) handleCreate(w http.ResponseWriter, r *http.Request, user models.User) {
	var in dto.AssetInput
	if !decodeJSON(w, r, &in) {
		return
	}
	asset, err := in.NewAsset(user.ID)
	if err != nil {
		respond.Fail(w, err, "create asset")
		return
	}
	created, err := h.store.CreateAsset(r.Context(), asset)
	if err != nil {
		respond.Fail(w, err, "create asset")
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

func (h *AssetHandler) handleUpdate(w http.ResponseWriter, r *http.Request, user models.User) {
	var in dto.AssetInput
	if !decodeJSON(w, r, &in) {
		return
	}
	existing, err := h.store.GetAsset(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		respond.Fail(w, err, "Asset")
		return
	}
	merged, err := in.Apply(existing)
	if err != nil {
		respond.Fail(w, err, "update asset")
		return
	}
	updated, err := h.store.UpdateAsset(r.Context(), merged)
	if err != nil {
		respond.Fail(w, err, "Asset")
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

func (h *AssetHandler) handleDelete(w http.ResponseWriter, r *http.Request, user models.User) {
	if err := h.store.DeleteAsset(r.Context(), user.ID, r.PathValue("id")); err != nil {
		respond.Fail(w, err, "Asset")
		return
	}
	respond.JSON(w, http.StatusOK, dto.MessageResponse{Message: "Asset deleted successfully"})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SiddheshD91/PPL2026/internal/api/apierr"
	"github.com/SiddheshD91/PPL2026/internal/api/request"
	"github.com/SiddheshD91/PPL2026/internal/api/response"
	"github.com/SiddheshD91/PPL2026/internal/model"
	"github.com/SiddheshD91/PPL2026/internal/services/category"
)

// CategoryHandler handles category and membership endpoints
type CategoryHandler struct {
	categoryService *category.Service
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *category.Service) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create handles POST /api/v1/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	c, err := h.categoryService.Create(r.Context(), req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CategoryFromModel(c))
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoriesFromModel(categories))
}

// Get handles GET /api/v1/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.CategoryID(mux.Vars(r)["id"])

	c, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoryFromModel(c))
}

// Delete handles DELETE /api/v1/categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.CategoryID(mux.Vars(r)["id"])

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AddPlayer handles POST /api/v1/categories/{id}/players
func (h *CategoryHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	id := model.CategoryID(mux.Vars(r)["id"])

	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.categoryService.AddPlayer(r.Context(), id, model.PlayerID(req.PlayerID)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	c, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoryFromModel(c))
}

// RemovePlayer handles DELETE /api/v1/categories/{id}/players/{player_id}
func (h *CategoryHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.CategoryID(vars["id"])
	playerID := model.PlayerID(vars["player_id"])

	if err := h.categoryService.RemovePlayer(r.Context(), id, playerID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	c, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoryFromModel(c))
}

// Members handles GET /api/v1/categories/{id}/players
func (h *CategoryHandler) Members(w http.ResponseWriter, r *http.Request) {
	id := model.CategoryID(mux.Vars(r)["id"])

	c, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	members, err := h.categoryService.ResolveMembers(r.Context(), c)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CategoryMembers{
		Category: response.CategoryFromModel(c),
		Members:  response.PlayersFromModel(members),
	})
}

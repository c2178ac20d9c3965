package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SiddheshD91/PPL2026/internal/api/apierr"
	"github.com/SiddheshD91/PPL2026/internal/api/request"
	"github.com/SiddheshD91/PPL2026/internal/api/response"
	"github.com/SiddheshD91/PPL2026/internal/model"
	"github.com/SiddheshD91/PPL2026/internal/services/player"
)

// PlayerHandler handles player registration and admin player endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// Register handles POST /api/v1/players (the public registration form)
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	photo, err := base64.StdEncoding.DecodeString(req.Photo)
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("photo must be base64-encoded"))
		return
	}

	p, err := h.playerService.Register(r.Context(), player.RegisterInput{
		Name:             req.Name,
		TshirtSize:       req.TshirtSize,
		DOB:              req.DOB,
		Photo:            photo,
		PhotoContentType: req.PhotoContentType,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// List handles GET /api/v1/players[?search=term]
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	p, err := h.playerService.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Update handles PATCH /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	var photo []byte
	if req.Photo != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Photo)
		if err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("photo must be base64-encoded"))
			return
		}
		photo = decoded
	}

	err := h.playerService.Update(r.Context(), id, player.UpdateInput{
		Name:             req.Name,
		TshirtSize:       req.TshirtSize,
		DOB:              req.DOB,
		Photo:            photo,
		PhotoContentType: req.PhotoContentType,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	p, err := h.playerService.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

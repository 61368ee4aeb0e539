package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/interfaces"
	"savant-seeker/backend/internal/service"
)

// LoginRequest is the DTO for the local sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ayesha@example.com"`
	Password string `json:"password" validate:"required" example:"hunter2"`
}

// SettingsRequest is the DTO for saving conversation presets.
type SettingsRequest struct {
	Personality string `json:"personality" validate:"required" example:"mentor"`
	Mood        string `json:"mood" validate:"required,oneof=happy sad bored angry" example:"happy"`
}

// MemoryRequest adds one fact to the memory vault.
type MemoryRequest struct {
	Memory string `json:"memory" validate:"required,max=2000" example:"I live in Jhelum"`
}

// ReplaceMemoriesRequest overwrites the memory vault.
type ReplaceMemoriesRequest struct {
	Memories []string `json:"memories" validate:"dive,max=2000"`
}

// AccountHandler serves sign-in, settings and memories.
type AccountHandler struct {
	auth     interfaces.AuthService
	settings interfaces.SettingsService
	memories interfaces.MemoryService
}

func NewAccountHandler(auth interfaces.AuthService, settings interfaces.SettingsService, memories interfaces.MemoryService) *AccountHandler {
	return &AccountHandler{auth: auth, settings: settings, memories: memories}
}

// Login godoc
// @Summary      Sign in
// @Description  Signs in locally. Any email and non-empty password are accepted.
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  model.User
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/auth/login [post]
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// Logout godoc
// @Summary      Sign out
// @Description  Stops any generation and wipes every chat, memory, lifemap record and setting.
// @Tags         Account
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/auth/logout [post]
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetMe godoc
// @Summary      Current user
// @Tags         Account
// @Produce      json
// @Success      200  {object}  model.User
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/me [get]
func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.CurrentUser()
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// GetSettings godoc
// @Summary      Get settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Settings
// @Router       /v1/settings [get]
func (h *AccountHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.settings.Get())
}

// UpdateSettings godoc
// @Summary      Save settings
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request  body      SettingsRequest  true  "Presets"
// @Success      200      {object}  service.Settings
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/settings [post]
func (h *AccountHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	settings := service.Settings{Personality: req.Personality, Mood: req.Mood}
	if err := h.settings.Save(settings); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// GetPresets godoc
// @Summary      List presets
// @Description  Lists the selectable personalities and moods.
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Presets
// @Router       /v1/presets [get]
func (h *AccountHandler) GetPresets(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.settings.Presets())
}

// GetMemories godoc
// @Summary      List memories
// @Tags         Memories
// @Produce      json
// @Success      200  {object}  MemoriesResponse
// @Router       /v1/memories [get]
func (h *AccountHandler) GetMemories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, MemoriesResponse{Memories: h.memories.List()})
}

// AddMemory godoc
// @Summary      Add a memory
// @Description  Prepends a fact to the memory vault. Blank facts are ignored.
// @Tags         Memories
// @Accept       json
// @Produce      json
// @Param        request  body      MemoryRequest  true  "Fact"
// @Success      201      {object}  MemoriesResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/memories [post]
func (h *AccountHandler) AddMemory(w http.ResponseWriter, r *http.Request) {
	var req MemoryRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, MemoriesResponse{Memories: h.memories.Add(r.Context(), req.Memory)})
}

// ReplaceMemories godoc
// @Summary      Replace memories
// @Tags         Memories
// @Accept       json
// @Produce      json
// @Param        request  body      ReplaceMemoriesRequest  true  "Facts"
// @Success      200      {object}  MemoriesResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/memories [put]
func (h *AccountHandler) ReplaceMemories(w http.ResponseWriter, r *http.Request) {
	var req ReplaceMemoriesRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MemoriesResponse{Memories: h.memories.Replace(r.Context(), req.Memories)})
}

// DeleteMemory godoc
// @Summary      Delete a memory
// @Tags         Memories
// @Produce      json
// @Param        index  path      int  true  "Position in the vault"
// @Success      200    {object}  MemoriesResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /v1/memories/{index} [delete]
func (h *AccountHandler) DeleteMemory(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: index must be an integer", app_errors.ErrValidation))
		return
	}
	memories, err := h.memories.Delete(r.Context(), index)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MemoriesResponse{Memories: memories})
}

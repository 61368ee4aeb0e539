package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"savant-seeker/backend/internal/interfaces"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/service"
)

// LifemapEntryRequest is the DTO for a new journal entry.
type LifemapEntryRequest struct {
	Type          string   `json:"type" validate:"required,oneof=check-in note goal-created goal-update" example:"check-in"`
	Content       string   `json:"content" validate:"required,max=8000" example:"Slept well, felt focused"`
	Mood          string   `json:"mood" validate:"omitempty,oneof=happy sad bored angry" example:"happy"`
	Tags          []string `json:"tags"`
	RelatedGoalID string   `json:"related_goal_id"`
}

// GoalRequest is the DTO for creating a goal.
type GoalRequest struct {
	Title       string     `json:"title" validate:"required,max=200" example:"Learn Go"`
	Description string     `json:"description" validate:"max=4000"`
	TargetDate  *time.Time `json:"target_date"`
}

// UpdateGoalRequest is the DTO for editing a goal.
type UpdateGoalRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=4000"`
	TargetDate  *time.Time `json:"target_date"`
	Status      string     `json:"status" validate:"required,oneof=active completed archived" example:"completed"`
}

// LifemapHandler serves journal entries and goals.
type LifemapHandler struct {
	lifemap interfaces.LifemapService
	now     func() time.Time
}

func NewLifemapHandler(lifemap interfaces.LifemapService) *LifemapHandler {
	return &LifemapHandler{lifemap: lifemap, now: time.Now}
}

// GetEntries godoc
// @Summary      List journal entries
// @Tags         Lifemap
// @Produce      json
// @Success      200  {array}  model.LifemapEntry
// @Router       /v1/lifemap/entries [get]
func (h *LifemapHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.lifemap.Entries())
}

// AddEntry godoc
// @Summary      Add a journal entry
// @Tags         Lifemap
// @Accept       json
// @Produce      json
// @Param        request  body      LifemapEntryRequest  true  "Entry"
// @Success      201      {object}  model.LifemapEntry
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/lifemap/entries [post]
func (h *LifemapHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req LifemapEntryRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	entry, err := h.lifemap.AddEntry(r.Context(), service.NewLifemapEntry{
		Type:          model.LifemapEntryType(req.Type),
		Content:       req.Content,
		Mood:          req.Mood,
		Tags:          req.Tags,
		RelatedGoalID: req.RelatedGoalID,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, entry)
}

// DeleteEntry godoc
// @Summary      Delete a journal entry
// @Tags         Lifemap
// @Produce      json
// @Param        entryID  path      string  true  "Entry ID"
// @Success      200      {object}  StatusResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/lifemap/entries/{entryID} [delete]
func (h *LifemapHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.lifemap.DeleteEntry(r.Context(), chi.URLParam(r, "entryID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetGoals godoc
// @Summary      List goals
// @Tags         Lifemap
// @Produce      json
// @Success      200  {array}  model.Goal
// @Router       /v1/lifemap/goals [get]
func (h *LifemapHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.lifemap.Goals())
}

// AddGoal godoc
// @Summary      Add a goal
// @Tags         Lifemap
// @Accept       json
// @Produce      json
// @Param        request  body      GoalRequest  true  "Goal"
// @Success      201      {object}  model.Goal
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/lifemap/goals [post]
func (h *LifemapHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	var req GoalRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	goal, err := h.lifemap.AddGoal(r.Context(), service.NewGoal{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, goal)
}

// UpdateGoal godoc
// @Summary      Update a goal
// @Tags         Lifemap
// @Accept       json
// @Produce      json
// @Param        goalID   path      string             true  "Goal ID"
// @Param        request  body      UpdateGoalRequest  true  "Goal"
// @Success      200      {object}  model.Goal
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/lifemap/goals/{goalID} [put]
func (h *LifemapHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req UpdateGoalRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	goal, err := h.lifemap.UpdateGoal(r.Context(), model.Goal{
		ID:          chi.URLParam(r, "goalID"),
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Status:      model.GoalStatus(req.Status),
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary      Delete a goal
// @Tags         Lifemap
// @Produce      json
// @Param        goalID  path      string  true  "Goal ID"
// @Success      200     {object}  StatusResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/lifemap/goals/{goalID} [delete]
func (h *LifemapHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.lifemap.DeleteGoal(r.Context(), chi.URLParam(r, "goalID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Export godoc
// @Summary      Export the lifemap
// @Description  Downloads every goal and journal entry as a JSON file.
// @Tags         Lifemap
// @Produce      json
// @Success      200  {object}  service.LifemapExport
// @Router       /v1/lifemap/export [get]
func (h *LifemapHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.lifemap.Export(h.now())
	if err != nil {
		respondWithError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// DeleteAll godoc
// @Summary      Delete the lifemap
// @Description  Removes every goal and journal entry.
// @Tags         Lifemap
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/lifemap [delete]
func (h *LifemapHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	h.lifemap.DeleteAll(r.Context())
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

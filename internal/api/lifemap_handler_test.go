package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"savant-seeker/backend/internal/api"
	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/interfaces/mocks"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/service"
)

func setupLifemapHandler(t *testing.T) (*api.LifemapHandler, *mocks.MockLifemapService) {
	mockLifemap := mocks.NewMockLifemapService(t)
	return api.NewLifemapHandler(mockLifemap), mockLifemap
}

func TestLifemapHandler_Entries(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		handler, mockLifemap := setupLifemapHandler(t)
		mockLifemap.On("Entries").Return([]model.LifemapEntry{{ID: "entry-1", Type: model.EntryNote}}).Once()

		rr := httptest.NewRecorder()
		handler.GetEntries(rr, httptest.NewRequest(http.MethodGet, "/v1/lifemap/entries", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"type":"note"`)
	})

	t.Run("Add - Success", func(t *testing.T) {
		handler, mockLifemap := setupLifemapHandler(t)
		want := service.NewLifemapEntry{Type: model.EntryCheckIn, Content: "slept well", Mood: "happy", Tags: []string{"sleep"}}
		mockLifemap.On("AddEntry", mock.Anything, want).Return(model.LifemapEntry{ID: "entry-1"}, nil).Once()

		body := `{"type":"check-in","content":"slept well","mood":"happy","tags":["sleep"]}`
		rr := httptest.NewRecorder()
		handler.AddEntry(rr, httptest.NewRequest(http.MethodPost, "/v1/lifemap/entries", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Add - unknown type", func(t *testing.T) {
		handler, _ := setupLifemapHandler(t)

		body := `{"type":"rant","content":"x"}`
		rr := httptest.NewRecorder()
		handler.AddEntry(rr, httptest.NewRequest(http.MethodPost, "/v1/lifemap/entries", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Delete - Not Found", func(t *testing.T) {
		handler, mockLifemap := setupLifemapHandler(t)
		mockLifemap.On("DeleteEntry", mock.Anything, "entry-9").Return(app_errors.ErrNotFound).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodDelete, "/v1/lifemap/entries/entry-9", nil), map[string]string{"entryID": "entry-9"})
		rr := httptest.NewRecorder()
		handler.DeleteEntry(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestLifemapHandler_Goals(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		handler, mockLifemap := setupLifemapHandler(t)
		mockLifemap.On("AddGoal", mock.Anything, mock.MatchedBy(func(in service.NewGoal) bool {
			return in.Title == "Learn Go" && in.TargetDate != nil && in.TargetDate.Year() == 2027
		})).Return(model.Goal{ID: "goal-1", Status: model.GoalActive}, nil).Once()

		body := `{"title":"Learn Go","target_date":"2027-01-01T00:00:00Z"}`
		rr := httptest.NewRecorder()
		handler.AddGoal(rr, httptest.NewRequest(http.MethodPost, "/v1/lifemap/goals", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Update uses the path id", func(t *testing.T) {
		handler, mockLifemap := setupLifemapHandler(t)
		mockLifemap.On("UpdateGoal", mock.Anything, mock.MatchedBy(func(g model.Goal) bool {
			return g.ID == "goal-1" && g.Status == model.GoalCompleted
		})).Return(model.Goal{ID: "goal-1", Status: model.GoalCompleted}, nil).Once()

		body := `{"title":"Learn Go","status":"completed"}`
		req := addChiURLParams(httptest.NewRequest(http.MethodPut, "/v1/lifemap/goals/goal-1", strings.NewReader(body)), map[string]string{"goalID": "goal-1"})
		rr := httptest.NewRecorder()
		handler.UpdateGoal(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Update - invalid status", func(t *testing.T) {
		handler, _ := setupLifemapHandler(t)

		body := `{"title":"Learn Go","status":"paused"}`
		req := addChiURLParams(httptest.NewRequest(http.MethodPut, "/v1/lifemap/goals/goal-1", strings.NewReader(body)), map[string]string{"goalID": "goal-1"})
		rr := httptest.NewRecorder()
		handler.UpdateGoal(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		handler, mockLifemap := setupLifemapHandler(t)
		mockLifemap.On("DeleteGoal", mock.Anything, "goal-1").Return(nil).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodDelete, "/v1/lifemap/goals/goal-1", nil), map[string]string{"goalID": "goal-1"})
		rr := httptest.NewRecorder()
		handler.DeleteGoal(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestLifemapHandler_ExportAndDeleteAll(t *testing.T) {
	t.Run("Export sets the download headers", func(t *testing.T) {
		handler, mockLifemap := setupLifemapHandler(t)
		mockLifemap.On("Export", mock.AnythingOfType("time.Time")).
			Return("savant-seeker-lifemap-export-2026-10-14.json", []byte(`{"goals":[],"entries":[]}`), nil).Once()

		rr := httptest.NewRecorder()
		handler.Export(rr, httptest.NewRequest(http.MethodGet, "/v1/lifemap/export", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `attachment; filename="savant-seeker-lifemap-export-2026-10-14.json"`, rr.Header().Get("Content-Disposition"))
		assert.JSONEq(t, `{"goals":[],"entries":[]}`, rr.Body.String())
	})

	t.Run("DeleteAll", func(t *testing.T) {
		handler, mockLifemap := setupLifemapHandler(t)
		mockLifemap.On("DeleteAll", mock.Anything).Return().Once()

		rr := httptest.NewRecorder()
		handler.DeleteAll(rr, httptest.NewRequest(http.MethodDelete, "/v1/lifemap", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}


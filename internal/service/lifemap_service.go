package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/persistence"
)

// NewLifemapEntry is the caller-supplied part of a lifemap entry.
type NewLifemapEntry struct {
	Type          model.LifemapEntryType
	Content       string
	Mood          string
	Tags          []string
	RelatedGoalID string
}

// NewGoal is the caller-supplied part of a goal.
type NewGoal struct {
	Title       string
	Description string
	TargetDate  *time.Time
}

// LifemapExport is the document produced by Export.
type LifemapExport struct {
	Goals   []model.Goal         `json:"goals"`
	Entries []model.LifemapEntry `json:"entries"`
}

// LifemapService keeps the user's journal entries and goals.
type LifemapService struct {
	mu      sync.RWMutex
	entries []model.LifemapEntry
	goals   []model.Goal
	adapter *persistence.Adapter
	now     func() time.Time
}

func NewLifemapService(adapter *persistence.Adapter) *LifemapService {
	return &LifemapService{
		adapter: adapter,
		entries: []model.LifemapEntry{},
		goals:   []model.Goal{},
		now:     time.Now,
	}
}

// Entries returns the journal, newest first.
func (s *LifemapService) Entries() []model.LifemapEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

func (s *LifemapService) Goals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.goals)
}

// AddEntry stamps the entry with an id and the current time.
func (s *LifemapService) AddEntry(ctx context.Context, in NewLifemapEntry) (model.LifemapEntry, error) {
	if strings.TrimSpace(in.Content) == "" {
		return model.LifemapEntry{}, fmt.Errorf("%w: entry content cannot be empty", app_errors.ErrValidation)
	}
	if !validEntryType(in.Type) {
		return model.LifemapEntry{}, fmt.Errorf("%w: unknown entry type '%s'", app_errors.ErrValidation, in.Type)
	}

	entry := model.LifemapEntry{
		ID:            model.NewID("entry"),
		Timestamp:     s.now(),
		Type:          in.Type,
		Content:       in.Content,
		Mood:          in.Mood,
		Tags:          slices.Clone(in.Tags),
		RelatedGoalID: in.RelatedGoalID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]model.LifemapEntry{entry}, s.entries...)
	slices.SortStableFunc(s.entries, func(a, b model.LifemapEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	s.saveLocked(ctx)
	return entry, nil
}

func (s *LifemapService) DeleteEntry(ctx context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.entries, func(e model.LifemapEntry) bool { return e.ID == entryID })
	if idx < 0 {
		return fmt.Errorf("%w: lifemap entry %s", app_errors.ErrNotFound, entryID)
	}
	s.entries = slices.Delete(s.entries, idx, idx+1)
	s.saveLocked(ctx)
	return nil
}

// AddGoal creates an active goal at the top of the list.
func (s *LifemapService) AddGoal(ctx context.Context, in NewGoal) (model.Goal, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Goal{}, fmt.Errorf("%w: goal title cannot be empty", app_errors.ErrValidation)
	}
	goal := model.Goal{
		ID:          model.NewID("goal"),
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   s.now(),
		TargetDate:  in.TargetDate,
		Status:      model.GoalActive,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append([]model.Goal{goal}, s.goals...)
	s.saveLocked(ctx)
	return goal, nil
}

// UpdateGoal replaces the goal with the same id.
func (s *LifemapService) UpdateGoal(ctx context.Context, goal model.Goal) (model.Goal, error) {
	if !goal.Status.Valid() {
		return model.Goal{}, fmt.Errorf("%w: unknown goal status '%s'", app_errors.ErrValidation, goal.Status)
	}
	if strings.TrimSpace(goal.Title) == "" {
		return model.Goal{}, fmt.Errorf("%w: goal title cannot be empty", app_errors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.goals, func(g model.Goal) bool { return g.ID == goal.ID })
	if idx < 0 {
		return model.Goal{}, fmt.Errorf("%w: goal %s", app_errors.ErrNotFound, goal.ID)
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = s.goals[idx].CreatedAt
	}
	s.goals[idx] = goal
	s.saveLocked(ctx)
	return goal, nil
}

func (s *LifemapService) DeleteGoal(ctx context.Context, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.goals, func(g model.Goal) bool { return g.ID == goalID })
	if idx < 0 {
		return fmt.Errorf("%w: goal %s", app_errors.ErrNotFound, goalID)
	}
	s.goals = slices.Delete(s.goals, idx, idx+1)
	s.saveLocked(ctx)
	return nil
}

// Export returns the download file name for the given day and the
// pretty-printed JSON document.
func (s *LifemapService) Export(now time.Time) (string, []byte, error) {
	s.mu.RLock()
	doc := LifemapExport{Goals: slices.Clone(s.goals), Entries: slices.Clone(s.entries)}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("could not encode lifemap export: %w", err)
	}
	filename := fmt.Sprintf("savant-seeker-lifemap-export-%s.json", now.UTC().Format(time.DateOnly))
	return filename, data, nil
}

// DeleteAll removes every entry and goal.
func (s *LifemapService) DeleteAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = []model.LifemapEntry{}
	s.goals = []model.Goal{}
	s.saveLocked(ctx)
}

// restore loads state without writing it back.
func (s *LifemapService) restore(entries []model.LifemapEntry, goals []model.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]model.LifemapEntry{}, entries...)
	s.goals = append([]model.Goal{}, goals...)
}

func (s *LifemapService) saveLocked(ctx context.Context) {
	s.adapter.SaveLifemap(ctx, s.entries, s.goals)
}

func validEntryType(t model.LifemapEntryType) bool {
	switch t {
	case model.EntryCheckIn, model.EntryNote, model.EntryGoalCreated, model.EntryGoalUpdate:
		return true
	}
	return false
}

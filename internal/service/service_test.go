package service_test

import (
	"context"
	"testing"

	"go.uber.org/goleak"

	"savant-seeker/backend/internal/llm"
	mock_llm "savant-seeker/backend/internal/llm/mocks"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/persistence"
	"savant-seeker/backend/internal/repository"
	"savant-seeker/backend/internal/service"
	"savant-seeker/backend/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

const testPrefix = "savant-"

type harness struct {
	repo     repository.Repository
	store    *store.Store
	adapter  *persistence.Adapter
	llm      *mock_llm.MockProvider
	settings *service.SettingsService
	memories *service.MemoryService
	lifemap  *service.LifemapService
	session  *service.SessionController
	chats    *service.ChatService
	auth     *service.AuthService
}

func setupServices(t *testing.T) *harness {
	return setupServicesWithRepo(t, repository.NewMemoryRepository())
}

func setupServicesWithRepo(t *testing.T, repo repository.Repository) *harness {
	h := &harness{
		repo:     repo,
		store:    store.New(),
		adapter:  persistence.NewAdapter(repo, testPrefix),
		llm:      mock_llm.NewMockProvider(t),
		settings: service.NewSettingsService(),
	}
	h.store.AddListener(h.adapter)
	h.memories = service.NewMemoryService(h.adapter)
	h.lifemap = service.NewLifemapService(h.adapter)
	h.session = service.NewSessionController(h.store, h.llm, h.settings, h.memories, service.GenerationConfig{
		ChatModel:  "gemini-test",
		ImageModel: "imagen-test",
		ImageCount: 2,
	})
	h.chats = service.NewChatService(h.store)
	h.auth = service.NewAuthService(h.store, h.adapter, h.session, h.settings, h.memories, h.lifemap)
	return h
}

type streamFunc = func(context.Context, *llm.GenerateRequest, chan<- llm.StreamResponse) error

// streamChunks behaves like a well-mannered provider sending the given chunks.
func streamChunks(chunks ...llm.StreamResponse) streamFunc {
	return func(ctx context.Context, _ *llm.GenerateRequest, ch chan<- llm.StreamResponse) error {
		defer close(ch)
		for _, c := range chunks {
			select {
			case ch <- c:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}
}

func text(parts ...string) []llm.StreamResponse {
	out := make([]llm.StreamResponse, len(parts))
	for i, p := range parts {
		out[i] = llm.StreamResponse{Content: p}
	}
	return out
}

// drain runs fn with a buffered event channel and returns every event sent.
func drain(fn func(chan<- model.StreamEvent) error) ([]model.StreamEvent, error) {
	events := make(chan model.StreamEvent, 64)
	err := fn(events)
	var out []model.StreamEvent
	for ev := range events {
		out = append(out, ev)
	}
	return out, err
}

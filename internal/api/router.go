package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "savant-seeker/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"savant-seeker/backend/internal/interfaces"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Chat    *ChatHandler
	Account *AccountHandler
	Lifemap *LifemapHandler
	Tools   *ToolsHandler
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(auth interfaces.AuthService, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.Timeout(60*time.Second)).Post("/auth/login", h.Account.Login)

		// Everything below needs a signed-in user.
		r.Group(func(r chi.Router) {
			r.Use(requireUser(auth))

			// Standard JSON routes get a request timeout.
			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(60 * time.Second))

				// --- Account ---
				r.Post("/auth/logout", h.Account.Logout)
				r.Get("/me", h.Account.GetMe)
				r.Get("/settings", h.Account.GetSettings)
				r.Post("/settings", h.Account.UpdateSettings)
				r.Get("/presets", h.Account.GetPresets)

				// --- Memories ---
				r.Get("/memories", h.Account.GetMemories)
				r.Post("/memories", h.Account.AddMemory)
				r.Put("/memories", h.Account.ReplaceMemories)
				r.Delete("/memories/{index}", h.Account.DeleteMemory)

				// --- Chats ---
				r.Get("/chats", h.Chat.GetChats)
				r.Post("/chats", h.Chat.CreateChat)
				r.Post("/chats/temporary", h.Chat.CreateTemporaryChat)
				r.Get("/chats/active", h.Chat.GetActiveChat)
				r.Get("/chats/{chatID}", h.Chat.GetChat)
				r.Put("/chats/{chatID}/select", h.Chat.SelectChat)
				r.Delete("/chats/{chatID}", h.Chat.DeleteChat)
				r.Get("/chats/{chatID}/curiosity", h.Chat.GetCuriosity)

				// --- Generation ---
				r.Get("/generation", h.Chat.GetGeneration)
				r.Post("/generation/stop", h.Chat.HandleStop)

				// --- Lifemap ---
				r.Get("/lifemap/entries", h.Lifemap.GetEntries)
				r.Post("/lifemap/entries", h.Lifemap.AddEntry)
				r.Delete("/lifemap/entries/{entryID}", h.Lifemap.DeleteEntry)
				r.Get("/lifemap/goals", h.Lifemap.GetGoals)
				r.Post("/lifemap/goals", h.Lifemap.AddGoal)
				r.Put("/lifemap/goals/{goalID}", h.Lifemap.UpdateGoal)
				r.Delete("/lifemap/goals/{goalID}", h.Lifemap.DeleteGoal)
				r.Get("/lifemap/export", h.Lifemap.Export)
				r.Delete("/lifemap", h.Lifemap.DeleteAll)

				// --- Tools ---
				r.Post("/tools/benchmark", h.Tools.RunBenchmark)
				r.Post("/tools/case", h.Tools.ConvertCase)
				r.Post("/tools/duplicates", h.Tools.FindDuplicates)
				r.Post("/tools/password", h.Tools.GeneratePassword)
				r.Post("/tools/json", h.Tools.FormatJSON)
				r.Post("/tools/diff", h.Tools.HighlightDiff)
				r.Post("/tools/filesize", h.Tools.FormatFileSize)
				r.Get("/tools/connectivity", h.Tools.CheckConnectivity)
				r.Get("/tools/gadgets", h.Tools.ListGadgets)
				r.Post("/tools/gadgets/{name}", h.Tools.RunGadget)
			})

			// Streaming routes must NOT have a timeout; they hold the
			// connection open for the whole generation.
			r.Group(func(r chi.Router) {
				r.Post("/chats/messages", h.Chat.HandleStreamMessage)
				r.Post("/generation/regenerate", h.Chat.HandleRegenerate)
			})
		})
	})

	return r
}

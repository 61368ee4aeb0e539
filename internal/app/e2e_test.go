package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savant-seeker/backend/internal/config"
	"savant-seeker/backend/internal/model"
)

// fakeGemini answers streaming requests with two text chunks.
func fakeGemini(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, text := range []string{"Hello", ", traveler"} {
			fmt.Fprintf(w, "data: {\"candidates\":[{\"content\":{\"role\":\"model\",\"parts\":[{\"text\":%q}]}}]}\n\n", text)
		}
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/"
}

func call(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestEndToEnd_ChatSurvivesRestart(t *testing.T) {
	cfg := testConfig(t, config.BackendSQLite)
	cfg.GeminiBaseURL = fakeGemini(t)

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	h := app.Server.Handler

	rr := call(t, h, http.MethodPost, "/api/v1/auth/login", `{"email":"ayesha@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = call(t, h, http.MethodPost, "/api/v1/chats/messages", `{"content":"Greet me"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"done":true`)

	rr = call(t, h, http.MethodGet, "/api/v1/chats/active", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var chat model.Chat
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &chat))
	require.Len(t, chat.Messages, 2)
	assert.Equal(t, "Greet me...", chat.Title)
	assert.Equal(t, "Hello, traveler", chat.Messages[1].Content)
	app.Close()

	// A second process over the same database restores the session.
	restarted, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	defer restarted.Close()

	rr = call(t, restarted.Server.Handler, http.MethodGet, "/api/v1/chats/active", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var restored model.Chat
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &restored))
	assert.Equal(t, chat.ID, restored.ID)
	assert.Equal(t, "Hello, traveler", restored.Messages[1].Content)

	rr = call(t, restarted.Server.Handler, http.MethodPost, "/api/v1/auth/logout", "")
	require.Equal(t, http.StatusOK, rr.Code)
	rr = call(t, restarted.Server.Handler, http.MethodGet, "/api/v1/chats", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savant-seeker/backend/internal/client"
	"savant-seeker/backend/internal/model"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ayesha@example.com", body["email"])
		_, _ = w.Write([]byte(`{"name":"Ayesha","email":"ayesha@example.com"}`))
	}))
	defer srv.Close()

	user, err := client.New(srv.URL+"/", srv.Client()).Login(context.Background(), "ayesha@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ayesha", user.Name)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"A response is already being generated."}`))
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, srv.Client()).SendMessage(context.Background(), client.Message{Content: "hi"}, nil)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "already being generated")
}

func TestClient_SendMessage_ParsesStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chats/messages", r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")
		for _, content := range []string{"He", "Hello"} {
			fmt.Fprintf(w, "data: {\"chat_id\":\"chat-1\",\"message\":{\"role\":\"assistant\",\"content\":%q},\"done\":false}\n\n", content)
		}
		fmt.Fprint(w, "data: {\"chat_id\":\"chat-1\",\"message\":{\"role\":\"assistant\",\"content\":\"Hello!\"},\"done\":true}\n\n")
	}))
	defer srv.Close()

	var seen []string
	final, err := client.New(srv.URL, srv.Client()).SendMessage(context.Background(), client.Message{Content: "hi"}, func(ev model.StreamEvent) {
		seen = append(seen, ev.Message.Content)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"He", "Hello", "Hello!"}, seen)
	assert.True(t, final.Done)
	assert.Equal(t, "Hello!", final.Message.Content)
}

func TestClient_Regenerate_StreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data: {\"chat_id\":\"chat-1\",\"done\":false}\n\n")
		fmt.Fprint(w, "event: error\ndata: {\"error\":\"boom\"}\n\n")
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, srv.Client()).Regenerate(context.Background(), nil)
	assert.ErrorContains(t, err, "boom")
}

func TestClient_ExportLifemap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="savant-seeker-lifemap-export-2026-10-14.json"`)
		_, _ = w.Write([]byte(`{"goals":[],"entries":[]}`))
	}))
	defer srv.Close()

	name, data, err := client.New(srv.URL, srv.Client()).ExportLifemap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "savant-seeker-lifemap-export-2026-10-14.json", name)
	assert.JSONEq(t, `{"goals":[],"entries":[]}`, string(data))
}

func TestClient_ListAndStop(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/chats", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chats":[{"id":"chat-1","title":"Trip","message_count":4}],"active_chat_id":"chat-1"}`))
	})
	mux.HandleFunc("/api/v1/generation/stop", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stopped":false}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := client.New(srv.URL, srv.Client())

	list, err := c.ListChats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "chat-1", list.ActiveChatID)
	assert.Equal(t, 4, list.Chats[0].MessageCount)

	stopped, err := c.Stop(context.Background())
	require.NoError(t, err)
	assert.False(t, stopped)
}

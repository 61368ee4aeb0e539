package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--server", srv.URL}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Ayesha","email":"ayesha@example.com"}`))
	}))
	defer srv.Close()

	out, err := execute(t, srv, "login", "ayesha@example.com", "-p", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Ayesha")
}

func TestCLI_ChatsMarksActive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chats":[{"id":"chat-1","title":"Trip","message_count":2},{"id":"chat-0","title":"Old"}],"active_chat_id":"chat-1"}`))
	}))
	defer srv.Close()

	out, err := execute(t, srv, "chats")
	require.NoError(t, err)
	assert.Contains(t, out, "* chat-1  Trip (2 messages)")
	assert.Contains(t, out, "  chat-0  Old (0 messages)")
}

func TestCLI_SendRendersReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"chat_id\":\"chat-1\",\"message\":{\"role\":\"assistant\",\"content\":\"**Hello**\",\"grounding_metadata\":[{\"uri\":\"https://example.com\",\"title\":\"Example\"}]},\"done\":true}\n\n")
	}))
	defer srv.Close()

	out, err := execute(t, srv, "send", "hi", "there")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "[source] Example https://example.com")
}

func TestCLI_SendReportsBusy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"A response is already being generated."}`))
	}))
	defer srv.Close()

	_, err := execute(t, srv, "send", "hi")
	assert.ErrorContains(t, err, "409")
}

func TestCLI_Export(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="savant-seeker-lifemap-export-2026-10-14.json"`)
		_, _ = w.Write([]byte(`{"goals":[],"entries":[]}`))
	}))
	defer srv.Close()
	dir := t.TempDir()

	_, err := execute(t, srv, "export", "--dir", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "savant-seeker-lifemap-export-2026-10-14.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"goals":[],"entries":[]}`, string(data))
}

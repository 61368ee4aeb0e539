package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/model"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response for operations that
// don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// ChatSummary is a chat without its messages, as listed in the sidebar.
type ChatSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	IsTemporary  bool      `json:"is_temporary"`
	MessageCount int       `json:"message_count"`
}

// ChatListResponse lists every chat, newest first, and the active chat id.
type ChatListResponse struct {
	Chats        []ChatSummary `json:"chats"`
	ActiveChatID string        `json:"active_chat_id,omitempty"`
}

// StopResponse reports whether a generation was running when stop was requested.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// MemoriesResponse wraps the memory vault.
type MemoriesResponse struct {
	Memories []string `json:"memories"`
}

func toSummaries(chats []model.Chat) []ChatSummary {
	out := make([]ChatSummary, len(chats))
	for i, c := range chats {
		out[i] = ChatSummary{
			ID:           c.ID,
			Title:        c.Title,
			CreatedAt:    c.CreatedAt,
			IsTemporary:  c.IsTemporary,
			MessageCount: len(c.Messages),
		}
	}
	return out
}

// respondWithError is the centralized error handling function for the API layer.
// It maps business-layer errors to HTTP status codes and formats a standard
// JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Validation messages from the service layer are already user-friendly.
		message = err.Error()
	case errors.Is(err, app_errors.ErrBusy):
		statusCode = http.StatusConflict
		message = "A response is already being generated. Stop it or wait for it to finish."
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = "A conflict occurred with the current state of the resource."
	case errors.Is(err, app_errors.ErrUnauthenticated):
		statusCode = http.StatusUnauthorized
		message = "You must be logged in."
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "You do not have permission to perform this action."
	default:
		// Anything else is an internal error; details stay in the log.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// sendStreamError sends a structured error message over a Server-Sent Events (SSE) stream.
func sendStreamError(w http.ResponseWriter, message string) {
	slog.Warn("Sending stream error to client", "message", message)
	errorPayload := ErrorResponse{Error: message}

	jsonData, err := json.Marshal(errorPayload)
	if err != nil {
		slog.Error("Failed to marshal stream error payload", "error", err)
		return
	}

	// `event: error` lets clients register a dedicated listener.
	if _, err := fmt.Fprintf(w, "event: error\ndata: %s\n\n", string(jsonData)); err != nil {
		slog.Warn("Failed to write stream error, client might have disconnected", "error", err)
		return
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// writeStreamEvent marshals data and writes it to an SSE stream.
// A returned error means the client has disconnected.
func writeStreamEvent(w http.ResponseWriter, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to marshal stream data to JSON", "error", err)
		// The stream is still open; only this payload is bad.
		return nil
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", string(jsonData)); err != nil {
		return fmt.Errorf("failed to write data to stream: %w", err)
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}

// streamEvents relays generation events as SSE. Errors raised before the
// first event become a plain JSON error response, so a busy or invalid
// request still gets a proper status code.
func streamEvents(w http.ResponseWriter, events <-chan model.StreamEvent, errc <-chan error) {
	first, ok := <-events
	if !ok {
		if err := <-errc; err != nil {
			respondWithError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	connected := true
	relay := func(ev model.StreamEvent) {
		if !connected {
			return
		}
		if err := writeStreamEvent(w, ev); err != nil {
			slog.Warn("Client disconnected during stream", "chat_id", ev.ChatID, "error", err)
			connected = false
		}
	}
	relay(first)
	// Keep draining so the generation can finish even without a reader.
	for ev := range events {
		relay(ev)
	}

	if err := <-errc; err != nil && connected {
		sendStreamError(w, err.Error())
	}
}

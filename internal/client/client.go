// Package client talks to the Savant Seeker HTTP API.
package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"savant-seeker/backend/internal/model"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// ChatSummary mirrors an entry of GET /chats.
type ChatSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	IsTemporary  bool   `json:"is_temporary"`
	MessageCount int    `json:"message_count"`
}

// ChatList mirrors the body of GET /chats.
type ChatList struct {
	Chats        []ChatSummary `json:"chats"`
	ActiveChatID string        `json:"active_chat_id"`
}

// Message is the body of a new user turn.
type Message struct {
	ChatID  string `json:"chat_id,omitempty"`
	Content string `json:"content"`
	Mood    string `json:"mood,omitempty"`
}

type Client struct {
	http    *http.Client
	baseURL string
}

// New returns a client for the server at baseURL, e.g. http://localhost:8000.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{http: httpClient, baseURL: strings.TrimRight(baseURL, "/") + "/api/v1"}
}

func (c *Client) Login(ctx context.Context, email, password string) (model.User, error) {
	var user model.User
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{"email": email, "password": password}, &user)
	return user, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) ListChats(ctx context.Context) (ChatList, error) {
	var list ChatList
	err := c.do(ctx, http.MethodGet, "/chats", nil, &list)
	return list, err
}

func (c *Client) NewChat(ctx context.Context, prompt string) (model.Chat, error) {
	var chat model.Chat
	err := c.do(ctx, http.MethodPost, "/chats", map[string]string{"prompt": prompt}, &chat)
	return chat, err
}

func (c *Client) SelectChat(ctx context.Context, chatID string) (model.Chat, error) {
	var chat model.Chat
	err := c.do(ctx, http.MethodPut, "/chats/"+chatID+"/select", nil, &chat)
	return chat, err
}

// Stop cancels the running generation and reports whether one was running.
func (c *Client) Stop(ctx context.Context) (bool, error) {
	var resp struct {
		Stopped bool `json:"stopped"`
	}
	err := c.do(ctx, http.MethodPost, "/generation/stop", nil, &resp)
	return resp.Stopped, err
}

// ExportLifemap returns the export file name and its JSON content.
func (c *Client) ExportLifemap(ctx context.Context) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/lifemap/export", nil)
	if err != nil {
		return "", nil, fmt.Errorf("could not create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return "", nil, err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("could not read response body: %w", err)
	}
	filename := "lifemap-export.json"
	if _, name, ok := strings.Cut(resp.Header.Get("Content-Disposition"), "filename="); ok {
		filename = strings.Trim(name, `"`)
	}
	return filename, data, nil
}

// SendMessage posts a user turn and calls onEvent for every streamed update.
// It returns the final event.
func (c *Client) SendMessage(ctx context.Context, msg Message, onEvent func(model.StreamEvent)) (model.StreamEvent, error) {
	return c.stream(ctx, "/chats/messages", msg, onEvent)
}

// Regenerate replays the last user message of the active chat.
func (c *Client) Regenerate(ctx context.Context, onEvent func(model.StreamEvent)) (model.StreamEvent, error) {
	return c.stream(ctx, "/generation/regenerate", nil, onEvent)
}

func (c *Client) stream(ctx context.Context, path string, body any, onEvent func(model.StreamEvent)) (model.StreamEvent, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return model.StreamEvent{}, err
	}
	req.Header.Set("Accept", "text/event-stream")
	resp, err := c.http.Do(req)
	if err != nil {
		return model.StreamEvent{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return model.StreamEvent{}, err
	}
	return readEvents(resp.Body, onEvent)
}

// readEvents parses an SSE body. An `event: error` frame ends the stream with an error.
func readEvents(r io.Reader, onEvent func(model.StreamEvent)) (model.StreamEvent, error) {
	var last model.StreamEvent
	eventName := ""
	scanner := bufio.NewScanner(r)
	// Generated images arrive inline as data URIs.
	scanner.Buffer(make([]byte, 0, 64*1024), 64<<20)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			eventName = ""
		case strings.HasPrefix(line, "event: "):
			eventName = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data := []byte(strings.TrimPrefix(line, "data: "))
			if eventName == "error" {
				var e struct {
					Error string `json:"error"`
				}
				_ = json.Unmarshal(data, &e)
				return last, fmt.Errorf("stream error: %s", e.Error)
			}
			var ev model.StreamEvent
			if err := json.Unmarshal(data, &ev); err != nil {
				return last, fmt.Errorf("could not decode stream event: %w", err)
			}
			last = ev
			if onEvent != nil {
				onEvent(ev)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return last, fmt.Errorf("stream interrupted: %w", err)
	}
	return last, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var e struct {
		Error string `json:"error"`
	}
	bodyBytes, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(bodyBytes, &e); err != nil || e.Error == "" {
		e.Error = strings.TrimSpace(string(bodyBytes))
	}
	return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
}

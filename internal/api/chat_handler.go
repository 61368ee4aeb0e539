package api

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/interfaces"
	"savant-seeker/backend/internal/media"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/service"
)

// multipartMemory is how much of a multipart upload is held in memory.
const multipartMemory = media.MaxImageBytes + 1<<20

// NewChatRequest is the DTO for creating a chat.
type NewChatRequest struct {
	Prompt string `json:"prompt" validate:"max=4000" example:"Plan a trip to Lahore"`
}

// ImagePayload is an inline image attached to a JSON message request. Data is
// either raw base64 or a base64 data URI.
type ImagePayload struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Data     string `json:"data" validate:"required"`
}

// SendMessageRequest is the DTO for a new user turn.
type SendMessageRequest struct {
	ChatID  string        `json:"chat_id" example:"chat-0192f1c3-..."`
	Content string        `json:"content" validate:"max=32000" example:"search for today's weather in Jhelum"`
	Mood    string        `json:"mood" validate:"omitempty,oneof=happy sad bored angry" example:"happy"`
	Image   *ImagePayload `json:"image,omitempty"`
}

// ChatHandler serves chats and generation streams.
type ChatHandler struct {
	chats   interfaces.ChatService
	session interfaces.SessionController
}

func NewChatHandler(chats interfaces.ChatService, session interfaces.SessionController) *ChatHandler {
	return &ChatHandler{chats: chats, session: session}
}

// GetChats godoc
// @Summary      List chats
// @Description  Lists every chat, newest first, without messages.
// @Tags         Chats
// @Produce      json
// @Success      200  {object}  ChatListResponse
// @Router       /v1/chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	resp := ChatListResponse{Chats: toSummaries(h.chats.ListChats())}
	if active, err := h.chats.ActiveChat(); err == nil {
		resp.ActiveChatID = active.ID
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// CreateChat godoc
// @Summary      Create a chat
// @Description  Creates an empty chat titled after the prompt and makes it active.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        request  body      NewChatRequest  false  "Title hint"
// @Success      201      {object}  model.Chat
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/chats [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req NewChatRequest
	if r.ContentLength != 0 {
		if err := decodeAndValidate(w, r, &req); err != nil {
			respondWithError(w, err)
			return
		}
	}
	chat, err := h.chats.NewChat(req.Prompt)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, chat)
}

// CreateTemporaryChat godoc
// @Summary      Create a temporary chat
// @Description  Creates a chat that is never persisted and makes it active.
// @Tags         Chats
// @Produce      json
// @Success      201  {object}  model.Chat
// @Router       /v1/chats/temporary [post]
func (h *ChatHandler) CreateTemporaryChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chats.NewTemporaryChat()
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, chat)
}

// GetActiveChat godoc
// @Summary      Get the active chat
// @Tags         Chats
// @Produce      json
// @Success      200  {object}  model.Chat
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/chats/active [get]
func (h *ChatHandler) GetActiveChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chats.ActiveChat()
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chat)
}

// GetChat godoc
// @Summary      Get a chat
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.Chat
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID} [get]
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chats.GetChat(chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chat)
}

// SelectChat godoc
// @Summary      Select a chat
// @Description  Makes the chat the active one.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.Chat
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/select [put]
func (h *ChatHandler) SelectChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chats.SelectChat(chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chat)
}

// DeleteChat godoc
// @Summary      Delete a chat
// @Description  Deleting the active chat leaves no chat active.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  StatusResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID} [delete]
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	if err := h.chats.DeleteChat(chi.URLParam(r, "chatID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetCuriosity godoc
// @Summary      Curiosity meter
// @Description  Scores the questions and long messages the user wrote in a chat.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  curiosity.Level
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/curiosity [get]
func (h *ChatHandler) GetCuriosity(w http.ResponseWriter, r *http.Request) {
	level, err := h.chats.CuriosityLevel(chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, level)
}

// HandleStreamMessage godoc
// @Summary      Send a message
// @Description  Appends the user message and streams the assistant reply as Server-Sent Events.
// @Description  Accepts JSON or multipart/form-data with an optional `image` file.
// @Tags         Generation
// @Accept       json,mpfd
// @Produce      text/event-stream
// @Param        request  body      SendMessageRequest  true  "Message"
// @Success      200      {object}  model.StreamEvent
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/chats/messages [post]
func (h *ChatHandler) HandleStreamMessage(w http.ResponseWriter, r *http.Request) {
	req, err := parseSendMessage(w, r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	events := make(chan model.StreamEvent)
	errc := make(chan error, 1)
	go func() {
		errc <- h.session.SendMessage(r.Context(), req, events)
	}()
	streamEvents(w, events, errc)
}

// HandleRegenerate godoc
// @Summary      Regenerate the last reply
// @Description  Drops the last user/assistant pair of the active chat and sends the user message again.
// @Tags         Generation
// @Produce      text/event-stream
// @Success      200  {object}  model.StreamEvent
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/generation/regenerate [post]
func (h *ChatHandler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	events := make(chan model.StreamEvent)
	errc := make(chan error, 1)
	go func() {
		errc <- h.session.Regenerate(r.Context(), events)
	}()
	streamEvents(w, events, errc)
}

// HandleStop godoc
// @Summary      Stop generating
// @Description  Cancels the in-flight generation. Content streamed so far is kept.
// @Tags         Generation
// @Produce      json
// @Success      200  {object}  StopResponse
// @Router       /v1/generation/stop [post]
func (h *ChatHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, StopResponse{Stopped: h.session.StopGeneration()})
}

// GetGeneration godoc
// @Summary      Generation state
// @Tags         Generation
// @Produce      json
// @Success      200  {object}  service.GenerationState
// @Router       /v1/generation [get]
func (h *ChatHandler) GetGeneration(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.session.State())
}

func parseSendMessage(w http.ResponseWriter, r *http.Request) (*service.SendMessageRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return parseMultipartMessage(r)
	}

	var dto SendMessageRequest
	if err := decodeAndValidate(w, r, &dto); err != nil {
		return nil, err
	}
	req := &service.SendMessageRequest{ChatID: dto.ChatID, Content: dto.Content, Mood: dto.Mood}
	if dto.Image != nil {
		att, err := decodeImagePayload(dto.Image)
		if err != nil {
			return nil, err
		}
		req.Image = att
	}
	return req, nil
}

func parseMultipartMessage(r *http.Request) (*service.SendMessageRequest, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, fmt.Errorf("%w: invalid multipart form: %v", app_errors.ErrValidation, err)
	}
	req := &service.SendMessageRequest{
		ChatID:  r.FormValue("chat_id"),
		Content: r.FormValue("content"),
		Mood:    r.FormValue("mood"),
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable image: %v", app_errors.ErrValidation, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, media.MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable image: %v", app_errors.ErrValidation, err)
	}
	req.Image = &media.Attachment{
		Name:     header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}
	return req, nil
}

func decodeImagePayload(p *ImagePayload) (*media.Attachment, error) {
	payload := media.Inline{Data: p.Data, MIMEType: p.MIMEType}
	if strings.HasPrefix(p.Data, "data:") {
		parsed, err := media.ParseDataURI(p.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", app_errors.ErrValidation, err)
		}
		payload = parsed
	}
	data, err := base64.StdEncoding.DecodeString(payload.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: image data is not valid base64", app_errors.ErrValidation)
	}
	return &media.Attachment{Name: p.Name, MIMEType: payload.MIMEType, Data: data}, nil
}

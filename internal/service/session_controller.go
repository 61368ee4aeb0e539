package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	app_errors "savant-seeker/backend/internal/errors"
	"savant-seeker/backend/internal/llm"
	"savant-seeker/backend/internal/media"
	"savant-seeker/backend/internal/model"
	"savant-seeker/backend/internal/persona"
	"savant-seeker/backend/internal/store"
)

const (
	generatedImageMIME   = "image/jpeg"
	generatedImageAspect = "1:1"
)

// GenerationConfig selects the backend models.
type GenerationConfig struct {
	ChatModel  string
	ImageModel string
	ImageCount int
}

// SendMessageRequest is a new user turn. An empty ChatID targets the active
// chat, or a new chat titled after Content when none is active.
type SendMessageRequest struct {
	ChatID  string
	Content string
	Image   *media.Attachment
	Mood    string
}

// GenerationState is the process-wide generation state. The zero value is Idle.
type GenerationState struct {
	Generating bool   `json:"generating"`
	ChatID     string `json:"chat_id,omitempty"`
	Mood       string `json:"mood,omitempty"`
}

type generation struct {
	seq    uint64
	chatID string
	cancel context.CancelFunc
}

// SessionController runs one request/response exchange at a time against the
// AI backend and keeps the chat store in step with partial and final results.
type SessionController struct {
	store    *store.Store
	llm      llm.Provider
	settings *SettingsService
	memories *MemoryService
	cfg      GenerationConfig

	mu     sync.Mutex
	seq    uint64
	active *generation
	mood   string
}

func NewSessionController(
	st *store.Store,
	provider llm.Provider,
	settings *SettingsService,
	memories *MemoryService,
	cfg GenerationConfig,
) *SessionController {
	if cfg.ImageCount <= 0 {
		cfg.ImageCount = 2
	}
	return &SessionController{
		store:    st,
		llm:      provider,
		settings: settings,
		memories: memories,
		cfg:      cfg,
	}
}

// State reports whether a generation is in flight and for which chat.
func (s *SessionController) State() GenerationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return GenerationState{Mood: s.mood}
	}
	return GenerationState{Generating: true, ChatID: s.active.chatID, Mood: s.mood}
}

// CurrentMood is the mood of the most recent send.
func (s *SessionController) CurrentMood() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mood
}

// StopGeneration cancels the in-flight generation and returns to Idle at once.
// Content streamed so far is kept. It reports whether anything was running.
func (s *SessionController) StopGeneration() bool {
	s.mu.Lock()
	gen := s.active
	s.active = nil
	s.mu.Unlock()

	if gen == nil {
		return false
	}
	gen.cancel()
	slog.Info("Generation stopped", "chat_id", gen.chatID)
	return true
}

// SendMessage appends the user turn and a placeholder assistant message, then
// fills the placeholder from the backend. Every store change made on behalf of
// the caller is sent on events, which is closed when SendMessage returns. It
// fails with ErrBusy while another generation is in flight. A message with
// neither text nor image is ignored.
func (s *SessionController) SendMessage(ctx context.Context, req *SendMessageRequest, events chan<- model.StreamEvent) error {
	defer close(events)

	if strings.TrimSpace(req.Content) == "" && req.Image == nil {
		return nil
	}
	mood := req.Mood
	if mood == "" {
		mood = s.settings.Get().Mood
	}
	if err := validateMood(mood); err != nil {
		return err
	}

	return s.run(ctx, req, mood, events, nil)
}

// Regenerate drops the final user/assistant pair of the active chat and sends
// the user message again with the last used mood. The original image, if any,
// is not re-attached.
func (s *SessionController) Regenerate(ctx context.Context, events chan<- model.StreamEvent) error {
	defer close(events)

	chat, ok := s.store.Active()
	if !ok {
		return fmt.Errorf("%w: no active chat", app_errors.ErrNotFound)
	}
	n := len(chat.Messages)
	if n < 2 || chat.Messages[n-2].Role != model.RoleUser {
		return fmt.Errorf("%w: nothing to regenerate", app_errors.ErrValidation)
	}
	lastUser := chat.Messages[n-2]

	req := &SendMessageRequest{ChatID: chat.ID, Content: lastUser.Content}
	prune := func() error { return s.store.Truncate(chat.ID, n-2) }
	return s.run(ctx, req, s.CurrentMood(), events, prune)
}

// run owns the generation slot from begin to finish. prepare runs after the
// slot is taken and before any message is appended.
func (s *SessionController) run(
	ctx context.Context,
	req *SendMessageRequest,
	mood string,
	events chan<- model.StreamEvent,
	prepare func() error,
) error {
	genCtx, gen, err := s.begin(ctx, req.ChatID, mood)
	if err != nil {
		return err
	}
	defer s.finish(gen)

	if prepare != nil {
		if err := prepare(); err != nil {
			return err
		}
	}

	var imageURL string
	var inline *media.Inline
	if req.Image != nil {
		uri, payload, err := media.Encode(*req.Image)
		if err != nil {
			slog.Error("Error processing image", "chat_id", req.ChatID, "error", err)
			return fmt.Errorf("%w: %v", app_errors.ErrValidation, err)
		}
		imageURL, inline = uri, &payload
	}

	var chat model.Chat
	if err := s.unlessStopped(genCtx, func() error {
		var err error
		chat, err = s.targetChat(req)
		return err
	}); err != nil {
		return ignoreStopped(err)
	}
	s.bind(gen, chat.ID)

	userMsg := model.Message{
		ID:        model.NewID("msg"),
		Role:      model.RoleUser,
		Content:   req.Content,
		Timestamp: time.Now(),
		ImageURL:  imageURL,
	}
	if err := s.unlessStopped(genCtx, func() error { return s.store.AppendMessage(chat.ID, userMsg) }); err != nil {
		return ignoreStopped(err)
	}
	emit(ctx, events, model.StreamEvent{ChatID: chat.ID, Message: &userMsg})

	placeholder := model.Message{
		ID:        model.NewID("msg"),
		Role:      model.RoleAssistant,
		Timestamp: time.Now(),
	}
	if err := s.unlessStopped(genCtx, func() error { return s.store.AppendMessage(chat.ID, placeholder) }); err != nil {
		return ignoreStopped(err)
	}
	emit(ctx, events, model.StreamEvent{ChatID: chat.ID, Message: &placeholder})

	history := make([]llm.Message, 0, len(chat.Messages))
	for _, m := range chat.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	var genErr error
	if wantsImages(req.Content) && inline == nil {
		genErr = s.generateImages(genCtx, ctx, chat.ID, placeholder.ID, req.Content, events)
	} else {
		llmReq := &llm.GenerateRequest{
			Model:             s.cfg.ChatModel,
			SystemInstruction: s.instruction(mood),
			History:           history,
			Prompt:            req.Content,
			Image:             inline,
		}
		if wantsSearch(req.Content) {
			llmReq.Tools = []llm.Tool{llm.ToolGoogleSearch}
		}
		genErr = s.stream(genCtx, ctx, chat.ID, placeholder.ID, llmReq, events)
	}

	final := model.StreamEvent{ChatID: chat.ID, Done: true}
	if genErr != nil && genCtx.Err() == nil {
		slog.Error("Error generating content", "chat_id", chat.ID, "message_id", placeholder.ID, "error", genErr)
		final.Error = genErr.Error()
		errorText := "Sorry, I encountered an error. " + genErr.Error()
		if _, err := s.store.UpdateMessage(chat.ID, placeholder.ID, func(m *model.Message) {
			m.Content = errorText
		}); err != nil {
			slog.Warn("Could not record generation error", "chat_id", chat.ID, "error", err)
		}
	}
	if msg, err := s.messageIn(chat.ID, placeholder.ID); err == nil {
		final.Message = &msg
	}
	emit(ctx, events, final)
	return nil
}

// stream appends each chunk to the placeholder in arrival order and stops as
// soon as genCtx is cancelled.
func (s *SessionController) stream(
	genCtx, ctx context.Context,
	chatID, messageID string,
	req *llm.GenerateRequest,
	events chan<- model.StreamEvent,
) error {
	streamCtx, cancel := context.WithCancel(genCtx)
	defer cancel()

	ch := make(chan llm.StreamResponse)
	errc := make(chan error, 1)
	go func() {
		errc <- s.llm.GenerateStream(streamCtx, req, ch)
	}()

	var applyErr error
	for chunk := range ch {
		if genCtx.Err() != nil {
			break
		}
		msg, err := s.store.UpdateMessage(chatID, messageID, func(m *model.Message) {
			m.Content += chunk.Content
			m.Citations = chunk.Citations
		})
		if err != nil {
			applyErr = err
			break
		}
		emit(ctx, events, model.StreamEvent{ChatID: chatID, Message: &msg})
	}

	// Unblocks a provider still waiting to send.
	cancel()
	streamErr := <-errc
	if applyErr != nil {
		return applyErr
	}
	if genCtx.Err() != nil && errors.Is(streamErr, context.Canceled) {
		return nil
	}
	return streamErr
}

func (s *SessionController) generateImages(
	genCtx, ctx context.Context,
	chatID, messageID, prompt string,
	events chan<- model.StreamEvent,
) error {
	resp, err := s.llm.GenerateImages(genCtx, &llm.ImageRequest{
		Model:       s.cfg.ImageModel,
		Prompt:      prompt,
		Count:       s.cfg.ImageCount,
		MIMEType:    generatedImageMIME,
		AspectRatio: generatedImageAspect,
	})
	if err != nil {
		return err
	}
	if genCtx.Err() != nil {
		return nil
	}

	urls := make([]string, 0, len(resp.Images))
	for _, img := range resp.Images {
		urls = append(urls, media.DataURI(generatedImageMIME, img.Data))
	}
	msg, err := s.store.UpdateMessage(chatID, messageID, func(m *model.Message) {
		m.Content = fmt.Sprintf("Here are the images you requested for: \"%s\"", prompt)
		m.GeneratedImages = urls
	})
	if err != nil {
		return err
	}
	emit(ctx, events, model.StreamEvent{ChatID: chatID, Message: &msg})
	return nil
}

// begin takes the generation slot. The returned context is cancelled by
// StopGeneration, by finish, or with ctx.
func (s *SessionController) begin(ctx context.Context, chatID, mood string) (context.Context, *generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return nil, nil, fmt.Errorf("%w: chat %s", app_errors.ErrBusy, s.active.chatID)
	}
	genCtx, cancel := context.WithCancel(ctx)
	s.seq++
	s.active = &generation{seq: s.seq, chatID: chatID, cancel: cancel}
	s.mood = mood
	return genCtx, s.active, nil
}

// unlessStopped runs fn under the slot lock so StopGeneration cannot slip in
// between the cancellation check and the store write.
func (s *SessionController) unlessStopped(genCtx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := genCtx.Err(); err != nil {
		return err
	}
	return fn()
}

// ignoreStopped turns a cancellation into a silent end of the exchange.
func ignoreStopped(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// bind records the resolved chat of a running generation.
func (s *SessionController) bind(gen *generation, chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen.chatID = chatID
}

// finish releases the slot unless it has already passed to a newer generation.
func (s *SessionController) finish(gen *generation) {
	gen.cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil && s.active.seq == gen.seq {
		s.active = nil
	}
}

func (s *SessionController) targetChat(req *SendMessageRequest) (model.Chat, error) {
	if req.ChatID != "" {
		return s.store.Get(req.ChatID)
	}
	if chat, ok := s.store.Active(); ok {
		return chat, nil
	}
	return createChat(s.store, titleFromPrompt(req.Content), false)
}

func (s *SessionController) messageIn(chatID, messageID string) (model.Message, error) {
	chat, err := s.store.Get(chatID)
	if err != nil {
		return model.Message{}, err
	}
	for _, m := range chat.Messages {
		if m.ID == messageID {
			return m, nil
		}
	}
	return model.Message{}, fmt.Errorf("%w: message %s", app_errors.ErrNotFound, messageID)
}

func (s *SessionController) instruction(mood string) string {
	return persona.ComposeInstruction(s.settings.Get().Personality, s.memories.List(), mood)
}

func wantsImages(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "img") || strings.Contains(lower, "logo")
}

func wantsSearch(content string) bool {
	return strings.Contains(strings.ToLower(content), "search for")
}

// emit delivers ev unless the caller has gone away.
func emit(ctx context.Context, events chan<- model.StreamEvent, ev model.StreamEvent) {
	select {
	case events <- ev:
	case <-ctx.Done():
	}
}

package llm

import (
	"context"

	"savant-seeker/backend/internal/media"
	"savant-seeker/backend/internal/model"
)

// Tool names an optional model capability.
type Tool string

// ToolGoogleSearch lets the model ground its answer in web search results.
const ToolGoogleSearch Tool = "google_search"

// Provider defines the interface for interacting with the generative-AI backend.
type Provider interface {
	// GenerateStream sends chunks on ch in the order the backend produces them
	// and closes ch when done. It must stop sending once ctx is cancelled.
	GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamResponse) error
	GenerateImages(ctx context.Context, req *ImageRequest) (*ImageResponse, error)
}

// Message is one prior turn of the conversation.
type Message struct {
	Role    model.Role `json:"role"`
	Content string     `json:"content"`
}

// GenerateRequest is a conversational request. History holds the prior turns;
// Prompt and Image form the final user turn.
type GenerateRequest struct {
	Model             string        `json:"model"`
	SystemInstruction string        `json:"system_instruction"`
	History           []Message     `json:"history"`
	Prompt            string        `json:"prompt"`
	Image             *media.Inline `json:"image,omitempty"`
	Tools             []Tool        `json:"tools,omitempty"`
}

// StreamResponse is a single increment of a streamed answer.
type StreamResponse struct {
	Content   string
	Citations []model.Citation
}

// ImageRequest asks for generated images.
type ImageRequest struct {
	Model       string
	Prompt      string
	Count       int
	MIMEType    string
	AspectRatio string
}

// Image is one generated image.
type Image struct {
	Data     []byte
	MIMEType string
}

type ImageResponse struct {
	Images []Image
}

package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"savant-seeker/backend/internal/model"
)

// GeminiConfig configures the Gemini API client.
type GeminiConfig struct {
	APIKey  string
	BaseURL string // Optional; overrides the public endpoint.
}

type geminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a Provider backed by the Gemini API.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamResponse) error {
	defer close(ch)

	contents, err := toContents(req)
	if err != nil {
		return err
	}

	for resp, err := range p.client.Models.GenerateContentStream(ctx, req.Model, contents, toConfig(req)) {
		if err != nil {
			return fmt.Errorf("gemini stream failed: %w", err)
		}
		chunk := StreamResponse{Content: textOf(resp), Citations: citationsOf(resp)}
		select {
		case ch <- chunk:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (p *geminiProvider) GenerateImages(ctx context.Context, req *ImageRequest) (*ImageResponse, error) {
	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: int32(req.Count),
		OutputMIMEType: req.MIMEType,
		AspectRatio:    req.AspectRatio,
	}
	resp, err := p.client.Models.GenerateImages(ctx, req.Model, req.Prompt, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini image generation failed: %w", err)
	}

	out := &ImageResponse{}
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		mimeType := generated.Image.MIMEType
		if mimeType == "" {
			mimeType = req.MIMEType
		}
		out.Images = append(out.Images, Image{Data: generated.Image.ImageBytes, MIMEType: mimeType})
	}
	if len(out.Images) == 0 {
		return nil, fmt.Errorf("gemini returned no images")
	}
	return out, nil
}

func toConfig(req *GenerateRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	for _, tool := range req.Tools {
		if tool == ToolGoogleSearch {
			cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
		}
	}
	return cfg
}

// toContents maps prior turns to Gemini roles and appends the new user turn,
// with the image part (if any) ahead of the text.
func toContents(req *GenerateRequest) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, m := range req.History {
		var role genai.Role = genai.RoleUser
		if m.Role == model.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	var parts []*genai.Part
	if req.Image != nil {
		data, err := req.Image.Bytes()
		if err != nil {
			return nil, fmt.Errorf("could not decode image payload: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, req.Image.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))
	contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	return contents, nil
}

func textOf(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// citationsOf returns the web sources of the first candidate, or nil.
func citationsOf(resp *genai.GenerateContentResponse) []model.Citation {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []model.Citation
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		out = append(out, model.Citation{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return out
}

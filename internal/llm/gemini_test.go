package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"savant-seeker/backend/internal/media"
	"savant-seeker/backend/internal/model"
)

func newFakeGemini(t *testing.T, handler http.HandlerFunc) Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	return p
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{})
	assert.ErrorContains(t, err, "API key is required")
}

func TestGeminiProvider_GenerateStream(t *testing.T) {
	p := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:streamGenerateContent")
		w.Header().Set("Content-Type", "text/event-stream")
		for _, text := range []string{"Hel", "lo"} {
			fmt.Fprintf(w, "data: {\"candidates\":[{\"content\":{\"role\":\"model\",\"parts\":[{\"text\":%q}]}}]}\n\n", text)
		}
	})

	ch := make(chan StreamResponse)
	errc := make(chan error, 1)
	go func() {
		errc <- p.GenerateStream(context.Background(), &GenerateRequest{Model: "gemini-2.5-flash", Prompt: "hi"}, ch)
	}()

	var got []string
	for chunk := range ch {
		got = append(got, chunk.Content)
	}
	require.NoError(t, <-errc)
	assert.Equal(t, []string{"Hel", "lo"}, got)
}

func TestGeminiProvider_GenerateStream_ServerError(t *testing.T) {
	p := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"boom","status":"INVALID_ARGUMENT"}}`))
	})

	ch := make(chan StreamResponse)
	errc := make(chan error, 1)
	go func() {
		errc <- p.GenerateStream(context.Background(), &GenerateRequest{Model: "gemini-2.5-flash", Prompt: "hi"}, ch)
	}()
	for range ch {
	}
	assert.ErrorContains(t, <-errc, "gemini stream failed")
}

func TestGeminiProvider_GenerateImages(t *testing.T) {
	p := newFakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ":predict"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions":[{"bytesBase64Encoded":"aGk=","mimeType":"image/jpeg"},{"bytesBase64Encoded":"eW8=","mimeType":"image/jpeg"}]}`))
	})

	resp, err := p.GenerateImages(context.Background(), &ImageRequest{Model: "imagen-3.0-generate-002", Prompt: "a logo", Count: 2, MIMEType: "image/jpeg"})
	require.NoError(t, err)
	require.Len(t, resp.Images, 2)
	assert.Equal(t, []byte("hi"), resp.Images[0].Data)
	assert.Equal(t, "image/jpeg", resp.Images[1].MIMEType)
}

func TestToContents(t *testing.T) {
	req := &GenerateRequest{
		History: []Message{
			{Role: model.RoleUser, Content: "hello"},
			{Role: model.RoleAssistant, Content: "hi there"},
		},
		Prompt: "what is this",
		Image:  &media.Inline{Data: "YWJj", MIMEType: "image/png"},
	}

	contents, err := toContents(req)
	require.NoError(t, err)
	require.Len(t, contents, 3)
	assert.Equal(t, genai.RoleUser, contents[0].Role)
	assert.Equal(t, genai.RoleModel, contents[1].Role)

	last := contents[2]
	require.Len(t, last.Parts, 2)
	require.NotNil(t, last.Parts[0].InlineData)
	assert.Equal(t, []byte("abc"), last.Parts[0].InlineData.Data)
	assert.Equal(t, "what is this", last.Parts[1].Text)

	_, err = toContents(&GenerateRequest{Image: &media.Inline{Data: "***"}})
	assert.Error(t, err)
}

func TestToConfig(t *testing.T) {
	cfg := toConfig(&GenerateRequest{SystemInstruction: "be kind", Tools: []Tool{ToolGoogleSearch}})
	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "be kind", cfg.SystemInstruction.Parts[0].Text)
	require.Len(t, cfg.Tools, 1)
	assert.NotNil(t, cfg.Tools[0].GoogleSearch)

	assert.Empty(t, toConfig(&GenerateRequest{}).Tools)
}

func TestResponseHelpers(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []*genai.Part{
			{Text: "thinking...", Thought: true},
			{Text: "Answer"},
		}},
		GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: []*genai.GroundingChunk{
			{Web: &genai.GroundingChunkWeb{URI: "https://example.com", Title: "Example"}},
			{},
		}},
	}}}

	assert.Equal(t, "Answer", textOf(resp))
	assert.Equal(t, []model.Citation{{URI: "https://example.com", Title: "Example"}}, citationsOf(resp))
	assert.Empty(t, textOf(nil))
	assert.Nil(t, citationsOf(&genai.GenerateContentResponse{}))
}

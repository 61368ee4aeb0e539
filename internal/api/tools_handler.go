package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"savant-seeker/backend/internal/devtools"
	app_errors "savant-seeker/backend/internal/errors"
)

// Case conversion directions accepted by the case tool.
const (
	caseToSnake = "snake"
	caseToCamel = "camel"
)

// TextRequest carries the input of a single-text tool.
type TextRequest struct {
	Text string `json:"text" validate:"max=1000000"`
}

// CaseRequest is the DTO for the case converter.
type CaseRequest struct {
	Text string `json:"text" validate:"required"`
	To   string `json:"to" validate:"required,oneof=snake camel" example:"snake"`
}

// PasswordRequest is the DTO for the password generator. Zero means the default length.
type PasswordRequest struct {
	Length int `json:"length" validate:"gte=0,lte=256" example:"16"`
}

// DiffRequest is the DTO for the text highlighter.
type DiffRequest struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// FileSizeRequest is the DTO for the size formatter.
type FileSizeRequest struct {
	Bytes uint64 `json:"bytes" example:"1536"`
}

// ToolResult is the output of a text tool.
type ToolResult struct {
	Result string `json:"result"`
}

// GadgetsResponse lists the available gadgets.
type GadgetsResponse struct {
	Gadgets []string `json:"gadgets"`
}

// ToolsHandler serves the developer tools and novelty gadgets.
type ToolsHandler struct {
	client          *http.Client
	connectivityURL string
}

func NewToolsHandler(client *http.Client, connectivityURL string) *ToolsHandler {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	if connectivityURL == "" {
		connectivityURL = devtools.DefaultConnectivityURL
	}
	return &ToolsHandler{client: client, connectivityURL: connectivityURL}
}

// RunBenchmark godoc
// @Summary      CPU benchmark
// @Tags         Tools
// @Produce      json
// @Success      200  {object}  ToolResult
// @Router       /v1/tools/benchmark [post]
func (h *ToolsHandler) RunBenchmark(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ToolResult{Result: devtools.RunCPUBenchmark()})
}

// ConvertCase godoc
// @Summary      Convert identifier case
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      CaseRequest  true  "Text"
// @Success      200      {object}  ToolResult
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/tools/case [post]
func (h *ToolsHandler) ConvertCase(w http.ResponseWriter, r *http.Request) {
	var req CaseRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	result := devtools.SnakeToCamel(req.Text)
	if req.To == caseToSnake {
		result = devtools.CamelToSnake(req.Text)
	}
	respondWithJSON(w, http.StatusOK, ToolResult{Result: result})
}

// FindDuplicates godoc
// @Summary      Find duplicate lines
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      TextRequest  true  "Text"
// @Success      200      {object}  devtools.Duplicates
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/tools/duplicates [post]
func (h *ToolsHandler) FindDuplicates(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, devtools.FindDuplicateLines(req.Text))
}

// GeneratePassword godoc
// @Summary      Generate a strong password
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      PasswordRequest  false  "Length"
// @Success      200      {object}  ToolResult
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/tools/password [post]
func (h *ToolsHandler) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordRequest
	if r.ContentLength != 0 {
		if err := decodeAndValidate(w, r, &req); err != nil {
			respondWithError(w, err)
			return
		}
	}
	password, err := devtools.GenerateStrongPassword(req.Length)
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: %v", app_errors.ErrValidation, err))
		return
	}
	respondWithJSON(w, http.StatusOK, ToolResult{Result: password})
}

// FormatJSON godoc
// @Summary      Pretty-print JSON
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      TextRequest  true  "JSON text"
// @Success      200      {object}  ToolResult
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/tools/json [post]
func (h *ToolsHandler) FormatJSON(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	pretty, err := devtools.PrettyJSON(req.Text)
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: %v", app_errors.ErrValidation, err))
		return
	}
	respondWithJSON(w, http.StatusOK, ToolResult{Result: pretty})
}

// HighlightDiff godoc
// @Summary      Highlight text differences
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      DiffRequest  true  "Texts"
// @Success      200      {object}  devtools.Diff
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/tools/diff [post]
func (h *ToolsHandler) HighlightDiff(w http.ResponseWriter, r *http.Request) {
	var req DiffRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, devtools.HighlightDiff(req.Before, req.After))
}

// FormatFileSize godoc
// @Summary      Format a byte count
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      FileSizeRequest  true  "Size"
// @Success      200      {object}  ToolResult
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/tools/filesize [post]
func (h *ToolsHandler) FormatFileSize(w http.ResponseWriter, r *http.Request) {
	var req FileSizeRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ToolResult{Result: devtools.FileSize(req.Bytes)})
}

// CheckConnectivity godoc
// @Summary      Check internet connectivity
// @Tags         Tools
// @Produce      json
// @Success      200  {object}  devtools.Connectivity
// @Router       /v1/tools/connectivity [get]
func (h *ToolsHandler) CheckConnectivity(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, devtools.CheckInternetConnection(r.Context(), h.client, h.connectivityURL))
}

// ListGadgets godoc
// @Summary      List gadgets
// @Tags         Gadgets
// @Produce      json
// @Success      200  {object}  GadgetsResponse
// @Router       /v1/tools/gadgets [get]
func (h *ToolsHandler) ListGadgets(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, GadgetsResponse{Gadgets: devtools.GadgetNames()})
}

// RunGadget godoc
// @Summary      Run a gadget
// @Tags         Gadgets
// @Accept       json
// @Produce      json
// @Param        name     path      string       true  "Gadget name"
// @Param        request  body      TextRequest  true  "Input"
// @Success      200      {object}  ToolResult
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/tools/gadgets/{name} [post]
func (h *ToolsHandler) RunGadget(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	gadget, ok := devtools.Gadgets[name]
	if !ok {
		respondWithError(w, fmt.Errorf("%w: gadget %s", app_errors.ErrNotFound, name))
		return
	}
	var req TextRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ToolResult{Result: gadget(req.Text)})
}

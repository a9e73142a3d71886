// Package server provides the HTTP API for canvas layout operations.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lucidworks/gridbuilder/pkg/engine"
	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
	"github.com/lucidworks/gridbuilder/pkg/vizgraph"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the layout API.
type Handler struct {
	engine *engine.Engine
	logger *log.Logger
}

// NewHandler creates a new API handler.
func NewHandler(eng *engine.Engine, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{engine: eng, logger: logger}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/breakpoints", h.handleBreakpoints)
		r.Get("/cascade.svg", h.handleCascadeSVG)

		r.Route("/canvases", func(r chi.Router) {
			r.Get("/", h.handleListCanvases)
			r.Route("/{canvasID}", func(r chi.Router) {
				r.Get("/", h.handleGetCanvas)
				r.Put("/", h.handlePutCanvas)
				r.Delete("/", h.handleDeleteCanvas)
				r.Get("/resolve", h.handleResolve)
				r.Get("/height", h.handleHeight)
				r.Post("/items", h.handlePlaceItem)
				r.Route("/items/{itemID}", func(r chi.Router) {
					r.Delete("/", h.handleRemoveItem)
					r.Post("/move", h.handleMoveItem)
					r.Post("/resize", h.handleResizeItem)
				})
			})
		})
	})

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

// =============================================================================
// Responses
// =============================================================================

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status string `json:"status"`
}

// HeightResponse carries a computed canvas height.
type HeightResponse struct {
	CanvasID string  `json:"canvas_id"`
	HeightPx float64 `json:"height_px"`
}

// ListResponse carries canvas IDs.
type ListResponse struct {
	Canvases []string `json:"canvases"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// writeEngineError maps structured error codes to HTTP statuses.
func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeCanvasNotFound, errors.ErrCodeItemNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLayout,
		errors.ErrCodeInvalidBreakpoints, errors.ErrCodeCycleDetected,
		errors.ErrCodeUnfittable:
		status = http.StatusBadRequest
	case errors.ErrCodeStore:
		status = http.StatusBadGateway
	}
	h.writeError(w, status, errors.UserMessage(err), string(code))
}

// =============================================================================
// Handlers
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (h *Handler) handleBreakpoints(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.engine.Breakpoints())
}

func (h *Handler) handleCascadeSVG(w http.ResponseWriter, _ *http.Request) {
	svg, err := vizgraph.RenderSVG(vizgraph.ToDOT(h.engine.Breakpoints(), vizgraph.Options{Detailed: true}))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (h *Handler) handleListCanvases(w http.ResponseWriter, r *http.Request) {
	ids, err := h.engine.Store().List(r.Context())
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	h.writeJSON(w, http.StatusOK, ListResponse{Canvases: ids})
}

func (h *Handler) handleGetCanvas(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "canvasID")
	canvas, err := h.engine.Store().Get(r.Context(), id)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	if canvas == nil {
		h.writeError(w, http.StatusNotFound, "canvas not found", string(errors.ErrCodeCanvasNotFound))
		return
	}
	h.writeJSON(w, http.StatusOK, canvas)
}

func (h *Handler) handlePutCanvas(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "canvasID")

	var canvas grid.Canvas
	if err := json.NewDecoder(r.Body).Decode(&canvas); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", string(errors.ErrCodeInvalidInput))
		return
	}
	canvas.ID = id

	if problems := grid.ValidateCanvas(&canvas); len(problems) > 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    "canvas failed validation",
			"code":     string(errors.ErrCodeInvalidLayout),
			"problems": problems,
		})
		return
	}

	if err := h.engine.Store().Put(r.Context(), &canvas); err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.engine.InvalidateUnitSize(id)
	h.writeJSON(w, http.StatusOK, &canvas)
}

func (h *Handler) handleDeleteCanvas(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "canvasID")
	if err := h.engine.Store().Delete(r.Context(), id); err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.engine.InvalidateUnitSize(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	width, ok := h.widthParam(w, r)
	if !ok {
		return
	}
	res, err := h.engine.ResolveCanvas(r.Context(), chi.URLParam(r, "canvasID"), width)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleHeight(w http.ResponseWriter, r *http.Request) {
	width, ok := h.widthParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "canvasID")
	px, err := h.engine.CanvasHeightPx(r.Context(), id, width)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, HeightResponse{CanvasID: id, HeightPx: px})
}

// PlaceItemRequest is the body for POST /canvases/{id}/items.
type PlaceItemRequest struct {
	Type   string  `json:"type"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (h *Handler) handlePlaceItem(w http.ResponseWriter, r *http.Request) {
	var req PlaceItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", string(errors.ErrCodeInvalidInput))
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		h.writeError(w, http.StatusBadRequest, "width and height must be positive", string(errors.ErrCodeInvalidInput))
		return
	}

	it, err := h.engine.PlaceItem(r.Context(), chi.URLParam(r, "canvasID"), req.Type, req.Width, req.Height)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, it)
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	err := h.engine.RemoveItem(r.Context(), chi.URLParam(r, "canvasID"), chi.URLParam(r, "itemID"))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveItemRequest is the body for POST .../items/{itemID}/move.
type MoveItemRequest struct {
	Breakpoint string  `json:"breakpoint"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

func (h *Handler) handleMoveItem(w http.ResponseWriter, r *http.Request) {
	var req MoveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", string(errors.ErrCodeInvalidInput))
		return
	}
	l, err := h.engine.MoveItem(r.Context(),
		chi.URLParam(r, "canvasID"), chi.URLParam(r, "itemID"),
		req.Breakpoint, req.X, req.Y)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

// ResizeItemRequest is the body for POST .../items/{itemID}/resize.
type ResizeItemRequest struct {
	Breakpoint string  `json:"breakpoint"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

func (h *Handler) handleResizeItem(w http.ResponseWriter, r *http.Request) {
	var req ResizeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", string(errors.ErrCodeInvalidInput))
		return
	}
	l, err := h.engine.ResizeItem(r.Context(),
		chi.URLParam(r, "canvasID"), chi.URLParam(r, "itemID"),
		req.Breakpoint, req.Width, req.Height)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

func (h *Handler) widthParam(w http.ResponseWriter, r *http.Request) (float64, bool) {
	raw := r.URL.Query().Get("width")
	if raw == "" {
		h.writeError(w, http.StatusBadRequest, "width query parameter is required", string(errors.ErrCodeInvalidInput))
		return 0, false
	}
	width, err := strconv.ParseFloat(raw, 64)
	if err != nil || width < 0 {
		h.writeError(w, http.StatusBadRequest, "width must be a non-negative number", string(errors.ErrCodeInvalidInput))
		return 0, false
	}
	return width, true
}

// Package server exposes the goquadratic tool interface over HTTP.
//
// Thread Safety: Handlers are safe for concurrent use; every request works
// on its own immutable equation.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	quad "github.com/njchilds90/goquadratic"
	"github.com/njchilds90/goquadratic/internal/chart"
	"github.com/njchilds90/goquadratic/internal/config"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

var contentTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
	"pdf": "application/pdf",
}

type Handlers struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *Metrics
}

func NewHandlers(cfg config.Config, logger *slog.Logger, metrics *Metrics) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Handlers{cfg: cfg, logger: logger, metrics: metrics}
}

// HandleTool handles POST /tool.
//
// The body is a quad.ToolRequest. Tool-level failures (bad coefficients,
// no real solution) are reported in ToolResponse.Error with status 200;
// malformed JSON is a 400 and a body over MaxBodyBytes a 413.
func (h *Handlers) HandleTool(c *gin.Context) {
	logger := h.logger.With("request_id", getOrCreateRequestID(c), "handler", "HandleTool")

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.Server.MaxBodyBytes)
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	var req quad.ToolRequest
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Request body too large", "limit", tooLarge.Limit)
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error(), Code: "REQUEST_TOO_LARGE"})
			return
		}
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	if dec.More() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: trailing data", Code: "INVALID_REQUEST"})
		return
	}

	start := time.Now()
	resp := quad.HandleToolCall(req)
	label := toolLabel(req.Tool)
	h.metrics.toolDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	body, err := json.Marshal(resp)
	if err != nil {
		logger.Error("Failed to encode tool response", "tool", req.Tool, "error", err)
		h.metrics.toolCalls.WithLabelValues(label, "error").Inc()
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to encode tool response", Code: "ENCODE_FAILED"})
		return
	}

	result := "ok"
	if resp.Error != "" {
		result = "error"
		logger.Debug("Tool call failed", "tool", req.Tool, "error", resp.Error)
	}
	h.metrics.toolCalls.WithLabelValues(label, result).Inc()
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// HandleSchema handles GET /schema, the tool schema for agent registration.
func (h *Handlers) HandleSchema(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", []byte(quad.ToolSpec()))
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Time: time.Now().UTC().Format(time.RFC3339)})
}

// HandlePlot handles GET /plot?a=&b=&c=&form=&format=.
//
// form defaults to standard and format to png. b and c default to 0.
func (h *Handlers) HandlePlot(c *gin.Context) {
	logger := h.logger.With("request_id", getOrCreateRequestID(c), "handler", "HandlePlot")

	e, err := equationFromQuery(c)
	if err != nil {
		code := "INVALID_EQUATION"
		if errors.Is(err, strconv.ErrSyntax) || errors.Is(err, strconv.ErrRange) {
			code = "INVALID_NUMBER"
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: code})
		return
	}

	format := c.DefaultQuery("format", "png")
	contentType, ok := contentTypes[format]
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported format: " + format, Code: "INVALID_FORMAT"})
		return
	}

	opts := chart.Options{
		Width:   h.cfg.Plot.Width,
		Height:  h.cfg.Plot.Height,
		Samples: h.cfg.Plot.Samples,
		Span:    h.cfg.Plot.Span,
	}
	var buf bytes.Buffer
	if err := chart.WriteTo(&buf, e, opts, format); err != nil {
		logger.Error("Failed to render plot", "error", err, "format", format)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to render plot", Code: "RENDER_FAILED"})
		return
	}
	h.metrics.plotsTotal.WithLabelValues(format).Inc()
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func equationFromQuery(c *gin.Context) (*quad.Equation, error) {
	kind, err := quad.ParseKind(c.DefaultQuery("form", "standard"))
	if err != nil {
		return nil, err
	}
	var coeffs [3]float64
	for i, key := range []string{"a", "b", "c"} {
		v, ok := c.GetQuery(key)
		if !ok {
			if key == "a" {
				return nil, errors.New("missing query parameter: a")
			}
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		coeffs[i] = f
	}
	return quad.NewEquation(coeffs[0], coeffs[1], coeffs[2], kind)
}

// toolLabel keeps metric cardinality bounded to the known tool names.
func toolLabel(tool string) string {
	for _, t := range quad.Tools() {
		if t == tool {
			return tool
		}
	}
	return "unknown"
}

func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

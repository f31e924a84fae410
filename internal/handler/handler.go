package handler

import (
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"enrollment-engine/internal/config"
	"enrollment-engine/internal/engine"
	"enrollment-engine/internal/model"
	"enrollment-engine/internal/scenarioregistry"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// Handle routes the two projection endpoints. Everything else — auth,
// rate limiting, persistence — belongs to the layers in front of this
// service.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	var multiYear bool
	switch path {
	case "/v1/projections":
		multiYear = false
	case "/v1/projections/multi-year":
		multiYear = true
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Unknown path: "+path)
		return
	}

	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.ScenarioCode != "" && req.Input.Scenario.Code == "" {
		params, ok := scenarioregistry.Get(req.ScenarioCode)
		if !ok {
			writeError(ctx, fasthttp.StatusBadRequest, "Unknown scenario code: "+req.ScenarioCode)
			return
		}
		req.Input.Scenario = params
	}
	if req.Input.DefaultClassSize == 0 {
		req.Input.DefaultClassSize = h.cfg.DefaultClassSize
	}
	if multiYear && req.Input.ProjectionYears > h.cfg.MaxProjectionYears {
		writeError(ctx, fasthttp.StatusBadRequest, "projection_years exceeds configured maximum")
		return
	}

	resp := engine.Process(&req, multiYear)

	body, err := json.Marshal(resp)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)

	slog.Info("projection served",
		"path", path,
		"tenant_id", req.TenantID,
		"outcome", resp.ProjectionMetadata.ProjectionOutcome,
		"years", len(resp.ProjectionOutput.Results),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetBody(body)
}

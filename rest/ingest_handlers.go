package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-pipeline/domain"
	"news-pipeline/metrics"
)

// handleIngest serves POST /v1/ingest. Only a run that failed as a whole
// answers 500; overlapping triggers and bad bodies answer 200 with an error.
func (h *Handlers) handleIngest(c echo.Context) error {
	resp := IngestResponse{Timestamp: h.timestamp()}

	var opts domain.IngestOptions
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&opts); err != nil {
			resp.Error = errorBody(c, errors.Join(domain.ErrInvalidFilter, err), "ingest")
			return c.JSON(http.StatusOK, resp)
		}
	}

	ctx := c.Request().Context()
	if h.IngestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.IngestTimeout)
		defer cancel()
	}

	report, err := h.Ingest.Execute(ctx, opts)
	resp.Report = report
	switch {
	case errors.Is(err, domain.ErrIngestInProgress):
		resp.Error = errorBody(c, err, "ingest")
		return c.JSON(http.StatusOK, resp)
	case err != nil:
		resp.Error = errorBody(c, err, "ingest")
		resp.Timestamp = h.timestamp()
		return c.JSON(http.StatusInternalServerError, resp)
	}

	resp.Timestamp = h.timestamp()
	metrics.RecordReadRequest("ingest", "ok")
	return c.JSON(http.StatusOK, resp)
}

// handleIngestStatus serves GET /v1/ingest/status.
func (h *Handlers) handleIngestStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, IngestStatusResponse{
		IngestStatus: h.Ingest.Status(),
		Timestamp:    h.timestamp(),
	})
}

// handleHealth serves GET /v1/health. A failing dependency degrades the
// status but the endpoint itself still answers 200.
func (h *Handlers) handleHealth(c echo.Context) error {
	resp := HealthResponse{Status: "ok", Timestamp: h.timestamp()}
	if len(h.Checks) > 0 {
		resp.Checks = make(map[string]string, len(h.Checks))
	}
	for name, check := range h.Checks {
		if err := check(c.Request().Context()); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "ok"
	}
	return c.JSON(http.StatusOK, resp)
}

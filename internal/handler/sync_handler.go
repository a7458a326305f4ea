package handler

import (
	"encoding/json"
	"net/http"

	"github.com/displaytree/paybeanlink/internal/sync"
	"github.com/displaytree/paybeanlink/pkg/logger"
	"github.com/displaytree/paybeanlink/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SyncHandler exposes the list/sync/batch endpoints for every
// registered collection.
type SyncHandler struct {
	engine *sync.Engine
}

// NewSyncHandler creates the handler on top of the sync engine.
func NewSyncHandler(engine *sync.Engine) *SyncHandler {
	return &SyncHandler{engine: engine}
}

// List handles GET /sync/:collection
func (h *SyncHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	col, ok := sync.Lookup(c.Param("collection"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown collection"})
	}

	rows, err := h.engine.List(col)
	if err != nil {
		log.Error("failed to list records",
			zap.String("collection", col.Kind()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve records"})
	}

	return c.JSON(http.StatusOK, rows)
}

// SyncOne handles POST /sync/:collection
func (h *SyncHandler) SyncOne(c echo.Context) error {
	log := logger.FromEcho(c)

	col, ok := sync.Lookup(c.Param("collection"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown collection"})
	}

	raw, err := decodeBody(c)
	if err != nil {
		log.Error("unreadable sync payload",
			zap.String("collection", col.Kind()),
			zap.Error(err))
		prometheus.RecordSyncFailure(col.Kind(), string(sync.CodeInvalidPayload))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	row, err := h.engine.Upsert(col, raw)
	if err != nil {
		code := sync.CodeOf(err)
		prometheus.RecordSyncFailure(col.Kind(), string(code))
		log.Error("sync failed",
			zap.String("collection", col.Kind()),
			zap.String("code", string(code)),
			zap.Error(err))
		return c.JSON(statusFor(code), echo.Map{"error": err.Error()})
	}

	prometheus.RecordSyncOperation(col.Kind(), "sync_one")
	return c.JSON(http.StatusOK, row)
}

// SyncBatch handles POST /sync/:collection/batch. The response is
// always delivered once the body parsed; callers inspect the success
// and failed fields rather than the transport status.
func (h *SyncHandler) SyncBatch(c echo.Context) error {
	log := logger.FromEcho(c)

	col, ok := sync.Lookup(c.Param("collection"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown collection"})
	}

	raw, err := decodeBody(c)
	if err != nil {
		log.Error("unreadable batch payload",
			zap.String("collection", col.Kind()),
			zap.Error(err))
		prometheus.RecordSyncFailure(col.Kind(), string(sync.CodeInvalidPayload))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}

	result := h.engine.UpsertBatch(col, raw)

	prometheus.RecordSyncOperation(col.Kind(), "sync_batch")
	prometheus.RecordBatchSize(col.Kind(), result.Processed+result.Failed)
	if result.Failed > 0 {
		log.Warn("batch completed with failures",
			zap.String("collection", col.Kind()),
			zap.Int("processed", result.Processed),
			zap.Int("failed", result.Failed))
	} else {
		log.Info("batch completed",
			zap.String("collection", col.Kind()),
			zap.Int("processed", result.Processed))
	}

	return c.JSON(http.StatusOK, result)
}

// decodeBody reads the request body as a single loosely typed JSON
// value: object, array or string are all acceptable.
func decodeBody(c echo.Context) (interface{}, error) {
	var raw interface{}
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// statusFor maps a sync failure code onto an HTTP status.
func statusFor(code sync.Code) int {
	switch code {
	case sync.CodeInvalidPayload:
		return http.StatusBadRequest
	case sync.CodeConflict:
		return http.StatusConflict
	case sync.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

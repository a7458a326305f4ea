package handler

import (
	"net/http"

	"github.com/displaytree/paybeanlink/internal/sync"
	"github.com/displaytree/paybeanlink/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetRegistrationByHost handles GET /sync/registrations/host/:hostname.
// Terminals call this on boot to learn the merchant id their hostname
// was issued.
func (h *SyncHandler) GetRegistrationByHost(c echo.Context) error {
	log := logger.FromEcho(c)

	host := c.Param("hostname")
	if host == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hostname is required"})
	}

	col, _ := sync.Lookup("registrations")
	row, err := h.engine.Find(col, sync.Key{{Column: "host_name", Value: host}})
	if err != nil {
		if sync.CodeOf(err) == sync.CodeNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "registration not found"})
		}
		log.Error("failed to look up registration",
			zap.String("host_name", host),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve registration"})
	}

	return c.JSON(http.StatusOK, row)
}

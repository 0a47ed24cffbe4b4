package get_catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookingWizardService/internal/api/handlers"
	"github.com/m04kA/BookingWizardService/internal/api/middleware"
	"github.com/m04kA/BookingWizardService/internal/service/catalog"
)

const (
	msgMissingToken = "отсутствует токен доступа"
	msgUnauthorized = "доступ запрещен"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("GET /catalog - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	catalogResp, err := h.service.GetCatalog(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnauthorized):
			h.logger.Warn("GET /catalog - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /catalog - Failed to load catalog: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, catalogResp)
}

package summary

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/user/inventory-go/respond"
)

// Response is the body of GET /api/summary.
type Response struct {
	Summary string `json:"summary" example:"Stock of Rice is low relative to its price..."`
}

// Handlers wraps the Service to provide HTTP handlers
type Handlers struct {
	service *Service
	log     *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(service *Service, log *zap.Logger) *Handlers {
	return &Handlers{service: service, log: log}
}

// HandleSummary godoc
// @Summary Inventory insights
// @Description Generates an analytical summary of all items. If the generation service fails the summary is a fixed fallback sentence.
// @Tags Summary
// @Produce json
// @Success 200 {object} summary.Response
// @Failure 500 {object} apperror.ErrorResponse "Failed to fetch items"
// @Router /api/summary [get]
func (h *Handlers) HandleSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := h.service.Summarize(r.Context())
		if err != nil {
			respond.Error(w, r, h.log, err)
			return
		}
		respond.JSON(w, http.StatusOK, Response{Summary: text})
	}
}

// Package respond writes JSON answers and standardized error bodies.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/user/inventory-go/apperror"
)

// Success is the envelope for write operations that only report an outcome.
type Success struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Item added."`
}

// JSON serializes data with the given status. A nil data writes only the status line.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already out; nothing else can be sent.
			return
		}
	}
}

// Error converts err into an apperror response. Errors outside the apperror taxonomy become a
// generic 500 so their text never reaches the client. 5xx causes are logged.
func Error(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Server error occurred. Please try again later.", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError && log != nil {
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(appErr),
		)
	}

	JSON(w, appErr.StatusCode(), appErr.ToResponse())
}

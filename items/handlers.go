package items

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/user/inventory-go/apperror"
	"github.com/user/inventory-go/respond"
)

const (
	msgMissingCreate = "Missing name, quantity, or price."
	msgMissingUpdate = "Missing id, name, quantity, or price."
	msgMissingDelete = "Missing id."
	msgNegative      = "Quantity and price must not be negative."
	msgTooMany       = "Quantity must not exceed 2147483647."
	msgBadBody       = "Invalid request body."
)

// Handlers wraps the Service to provide HTTP handlers
type Handlers struct {
	service  *Service
	validate *validator.Validate
	log      *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(service *Service, validate *validator.Validate, log *zap.Logger) *Handlers {
	return &Handlers{service: service, validate: validate, log: log}
}

// HandleList godoc
// @Summary List inventory items
// @Tags Items
// @Produce json
// @Success 200 {object} items.ListItemsResponse
// @Failure 500 {object} apperror.ErrorResponse "Failed to fetch items"
// @Router /api/items [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.List(r.Context())
		if err != nil {
			respond.Error(w, r, h.log, err)
			return
		}
		respond.JSON(w, http.StatusOK, ListItemsResponse{Success: true, Items: list})
	}
}

// HandleGet godoc
// @Summary Get one inventory item
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} items.ItemResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid item id"
// @Failure 404 {object} apperror.ErrorResponse "Item not found"
// @Router /api/items/{id} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respond.Error(w, r, h.log, apperror.NewBadRequestError("Invalid item id.", err))
			return
		}

		item, err := h.service.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, h.log, err)
			return
		}
		respond.JSON(w, http.StatusOK, ItemResponse{Success: true, Item: item})
	}
}

// HandleCreate godoc
// @Summary Add an inventory item
// @Tags Items
// @Accept json
// @Produce json
// @Param body body items.CreateItemRequest true "New item"
// @Success 201 {object} items.ItemResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing name, quantity, or price"
// @Failure 500 {object} apperror.ErrorResponse "Failed to add item"
// @Router /api/items [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if !h.decode(w, r, &req, msgMissingCreate) {
			return
		}

		item, err := h.service.Create(r.Context(), &req)
		if err != nil {
			respond.Error(w, r, h.log, err)
			return
		}
		respond.JSON(w, http.StatusCreated, ItemResponse{Success: true, Message: "Item added.", Item: item})
	}
}

// HandleUpdate godoc
// @Summary Replace an inventory item
// @Tags Items
// @Accept json
// @Produce json
// @Param body body items.UpdateItemRequest true "Item with id"
// @Success 200 {object} items.ItemResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing id, name, quantity, or price"
// @Failure 404 {object} apperror.ErrorResponse "Item not found"
// @Router /api/items [put]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateItemRequest
		if !h.decode(w, r, &req, msgMissingUpdate) {
			return
		}

		item, err := h.service.Update(r.Context(), &req)
		if err != nil {
			h.logUnknown(err, "update", req.ID)
			respond.Error(w, r, h.log, err)
			return
		}
		respond.JSON(w, http.StatusOK, ItemResponse{Success: true, Message: "Item updated.", Item: item})
	}
}

// HandleDelete godoc
// @Summary Delete an inventory item
// @Tags Items
// @Accept json
// @Produce json
// @Param body body items.DeleteItemRequest true "Item id"
// @Success 200 {object} respond.Success
// @Failure 400 {object} apperror.ErrorResponse "Missing id"
// @Failure 404 {object} apperror.ErrorResponse "Item not found"
// @Router /api/items [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteItemRequest
		if !h.decode(w, r, &req, msgMissingDelete) {
			return
		}

		if err := h.service.Delete(r.Context(), req.ID); err != nil {
			h.logUnknown(err, "delete", req.ID)
			respond.Error(w, r, h.log, err)
			return
		}
		respond.JSON(w, http.StatusOK, respond.Success{Success: true, Message: "Item deleted."})
	}
}

func (h *Handlers) logUnknown(err error, op string, id int64) {
	if apperror.IsNotFound(err) {
		h.log.Info("Write to unknown item", zap.String("op", op), zap.Int64("id", id))
	}
}

// decode reads and validates the JSON body into dst. On failure it writes the error answer
// and returns false; a missing required field is reported with missingMsg.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}, missingMsg string) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respond.Error(w, r, h.log, apperror.NewBadRequestError(msgBadBody, err))
		return false
	}

	err := h.validate.Struct(dst)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		respond.Error(w, r, h.log, apperror.NewInternalError("Server error occurred. Please try again later.", err))
		return false
	}
	msg := msgNegative
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			respond.Error(w, r, h.log, apperror.NewValidationError(missingMsg, nil))
			return false
		}
		// quantity is an INTEGER column
		if fe.Tag() == "lte" {
			msg = msgTooMany
		}
	}
	respond.Error(w, r, h.log, apperror.NewValidationError(msg, nil))
	return false
}

package users

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/user/inventory-go/apperror"
	"github.com/user/inventory-go/auth"
	"github.com/user/inventory-go/respond"
)

// UserHandlers provides HTTP handlers for user profile management.
type UserHandlers struct {
	service *UserService
	log     *zap.Logger
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService, log *zap.Logger) *UserHandlers {
	return &UserHandlers{service: service, log: log}
}

// HandleGetUserProfile godoc
// @Summary Get current user's profile
// @Description Retrieves the profile information for the currently authenticated user.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.UserProfileResponse "Successfully retrieved user profile"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/users/me [get]
func (h *UserHandlers) HandleGetUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			respond.Error(w, r, h.log, apperror.NewAuthError("User ID not found in context, middleware issue?", nil))
			return
		}

		profile, err := h.service.GetUserProfile(r.Context(), userID)
		if err != nil {
			respond.Error(w, r, h.log, err)
			return
		}

		respond.JSON(w, http.StatusOK, profile)
	}
}

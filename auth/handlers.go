package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/user/inventory-go/apperror"
	"github.com/user/inventory-go/respond"
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

// HandleCredentials godoc
// @Summary Sign up or log in
// @Description Mode "signup" registers the email; mode "login" checks the password and returns an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body auth.CredentialsRequest true "Credentials and mode"
// @Success 200 {object} auth.CredentialsResponse "Logged in"
// @Success 201 {object} auth.CredentialsResponse "User created"
// @Failure 400 {object} apperror.ErrorResponse "Invalid mode, missing fields, or user already exists"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/auth [post]
func (h *Handlers) HandleCredentials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, r, h.log, apperror.NewBadRequestError("Invalid request body.", err))
			return
		}

		if err := h.validateRequest(&req); err != nil {
			respond.Error(w, r, h.log, err)
			return
		}

		switch req.Mode {
		case ModeSignup:
			if _, err := h.service.Signup(r.Context(), req.Email, req.Password); err != nil {
				if apperror.IsValidationError(err) {
					h.log.Info("Signup rejected", zap.String("reason", err.Error()))
				}
				respond.Error(w, r, h.log, err)
				return
			}
			respond.JSON(w, http.StatusCreated, CredentialsResponse{Success: true, Message: "User created."})

		case ModeLogin:
			token, err := h.service.Login(r.Context(), req.Email, req.Password)
			if err != nil {
				respond.Error(w, r, h.log, err)
				return
			}
			respond.JSON(w, http.StatusOK, CredentialsResponse{
				Success:     true,
				Message:     "Logged in.",
				AccessToken: token.AccessToken,
				TokenType:   token.TokenType,
				ExpiresIn:   token.ExpiresIn,
			})
		}
	}
}

// validateRequest reports an invalid mode before missing fields.
func (h *Handlers) validateRequest(req *CredentialsRequest) error {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternalError("Server error occurred. Please try again later.", err)
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Mode" {
			return apperror.NewBadRequestError("Invalid mode.", nil)
		}
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Password" && fe.Tag() == "max" {
			return apperror.NewValidationError(msgPasswordTooLong, nil)
		}
	}
	return apperror.NewValidationError("Email and password are required.", nil)
}

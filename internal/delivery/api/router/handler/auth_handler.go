// Package handler contains the echo handlers for the credential and account endpoints.
package handler

import (
	"log/slog"
	"net/http"

	"keycard/internal/delivery/api/response"
	"keycard/internal/delivery/api/validator"
	deliverycontext "keycard/internal/delivery/context"
	"keycard/internal/infra/session"
	"keycard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler binds the credential flows to the session.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Signup registers a user and signs the session in as them.
func (h *AuthHandler) Signup(c echo.Context) error {
	req, ok, err := bindCredentials(c)
	if !ok {
		return err
	}

	user, err := h.authUC.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session.FromContext(c).SetUserID(user.ID.String())

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// Signin verifies credentials and signs the session in, replacing any earlier identity.
func (h *AuthHandler) Signin(c echo.Context) error {
	req, ok, err := bindCredentials(c)
	if !ok {
		return err
	}

	user, err := h.authUC.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session.FromContext(c).SetUserID(user.ID.String())

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// Signout returns the session to anonymous. Signing out while anonymous is not an error.
func (h *AuthHandler) Signout(c echo.Context) error {
	session.FromContext(c).Clear()

	return response.Success(c, http.StatusOK, nil)
}

// WhoAmI returns the signed-in user. The route is guarded by RequireUser.
func (h *AuthHandler) WhoAmI(c echo.Context) error {
	return response.Success(c, http.StatusOK, toUserResponse(deliverycontext.GetCurrentUser(c)))
}

// bindCredentials binds and validates the body. When ok is false the 400 response has
// already been written and err is the result of writing it.
func bindCredentials(c echo.Context) (req *CredentialsRequest, ok bool, err error) {
	req = &CredentialsRequest{}
	if err := c.Bind(req); err != nil {
		return nil, false, response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", nil)
	}
	if err := c.Validate(req); err != nil {
		return nil, false, response.ValidationFailed(c, validator.FieldErrors(err))
	}

	return req, true, nil
}

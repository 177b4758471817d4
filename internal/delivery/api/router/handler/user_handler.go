package handler

import (
	"log/slog"
	"net/http"

	"keycard/internal/delivery/api/response"
	"keycard/internal/delivery/api/validator"
	deliverycontext "keycard/internal/delivery/context"
	domainerrors "keycard/internal/domain/errors"
	"keycard/internal/infra/session"
	"keycard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account lookup and management.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

func (h *UserHandler) FindUser(c echo.Context) error {
	id, ok := parseUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUserNotFound)
	}

	user, err := h.userUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// FindUsers lists the users holding ?email=, possibly none.
func (h *UserHandler) FindUsers(c echo.Context) error {
	var query FindUsersQuery
	if err := c.Bind(&query); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid query", nil)
	}
	if err := c.Validate(&query); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	users, err := h.userUC.FindByEmail(c.Request().Context(), query.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users))
}

// UpdateUser changes the signed-in caller's own account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := ownUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrForbidden)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	user, err := h.userUC.Update(c.Request().Context(), id, &usecase.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// RemoveUser deletes the signed-in caller's own account and signs the session out.
func (h *UserHandler) RemoveUser(c echo.Context) error {
	id, ok := ownUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrForbidden)
	}

	user, err := h.userUC.Remove(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session.FromContext(c).Clear()

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// parseUserID reads the :id path parameter. An id that is not a UUID cannot name a user.
func parseUserID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// ownUserID reports the :id path parameter only when it names the signed-in user.
func ownUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := parseUserID(c)
	if !ok {
		return uuid.Nil, false
	}

	current := deliverycontext.GetCurrentUser(c)
	if current == nil || current.ID != id {
		return uuid.Nil, false
	}

	return id, true
}

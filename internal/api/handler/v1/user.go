package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kravdojo/gym-api/internal/api/handler/v1/request"
	"github.com/kravdojo/gym-api/internal/api/handler/v1/response"
	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
	ListUsers(ctx context.Context, q string) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List users
// @Description  Admin only. q filters by name or email, ignoring case.
// @Tags         users
// @Produce      json
// @Param        q    query     string  false  "free-text search"
// @Success      200  {array}   domain.User
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /Users [get]
// @Security     BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	users, err := h.svc.ListUsers(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleGetUser godoc
// @Summary      Get a user
// @Description  Members can only read themselves; admins can read anyone.
// @Tags         users
// @Produce      json
// @Param        userID  path      string  true  "user ID"
// @Success      200     {object}  domain.User
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /Users/{userID} [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID := ctx.Param("userID")
	if _, respErr := h.authorizeSelfOrAdmin(ctx, userID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateUser godoc
// @Summary      Update a user
// @Description  Partial update. Only admins may change isActive or membershipLevel.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userID   path      string                     true  "user ID"
// @Param        request  body      request.UpdateUserRequest  true  "fields to change"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /Users/{userID} [put]
// @Security     BearerAuth
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	userID := ctx.Param("userID")
	caller, respErr := h.authorizeSelfOrAdmin(ctx, userID)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if caller.Role != domain.RoleAdmin && (req.IsActive != nil || req.MembershipLevel != nil) {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot change own status", caller.ID)))
		return
	}

	user, err := h.svc.UpdateUser(ctx.Request.Context(), userID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
		case errors.Is(err, service.ErrUserEmailExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserEmailExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateUser -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Param        userID  path  string  true  "user ID"
// @Success      204
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /Users/{userID} [delete]
// @Security     BearerAuth
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userID := ctx.Param("userID")
	if err := h.svc.DeleteUser(ctx.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *UserHandler) authorizeSelfOrAdmin(ctx *gin.Context, userID string) (domain.User, *response.Err) {
	caller, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		return domain.User{}, respErr
	}
	if caller.ID != userID && caller.Role != domain.RoleAdmin {
		return domain.User{}, response.ErrPermissionDenied(fmt.Errorf("user %v cannot access user %v", caller.ID, userID))
	}
	return caller, nil
}

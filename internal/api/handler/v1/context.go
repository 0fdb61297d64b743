package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/kravdojo/gym-api/internal/api/handler/v1/response"
	"github.com/kravdojo/gym-api/internal/api/middleware"
	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/service"
)

var errNoUserInContext = errors.New("no authenticated user in context")

type UserGetter interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// getUserFromContext loads the caller identified by the JWT middleware.
func getUserFromContext(ctx *gin.Context, svc UserGetter) (domain.User, *response.Err) {
	userID := ctx.GetString(middleware.ContextKeyUserID)
	if userID == "" {
		return domain.User{}, response.ErrUnauthorized(errNoUserInContext)
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized(err)
		}

		err = fmt.Errorf("getUserFromContext -> svc.GetUser -> %w", err)
		return domain.User{}, response.ErrInternalServerError(err)
	}
	if !user.IsActive {
		return domain.User{}, response.ErrUnauthorized(service.ErrUserInactive)
	}

	return user, nil
}

func requireAdmin(user domain.User) *response.Err {
	if user.Role != domain.RoleAdmin {
		return response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID))
	}
	return nil
}

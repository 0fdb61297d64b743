package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kravdojo/gym-api/internal/api/handler/v1/request"
	"github.com/kravdojo/gym-api/internal/api/handler/v1/response"
	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/purchase"
	"github.com/kravdojo/gym-api/internal/service"
)

type PurchaseService interface {
	RequestPurchase(ctx context.Context, req purchase.Request) (domain.PurchaseIntent, error)
	ListIntents(ctx context.Context) ([]domain.PurchaseIntent, error)
	ListIntentsForStudent(ctx context.Context, studentID string) ([]domain.PurchaseIntent, error)
}

// FeedServer subscribes a websocket connection to new purchase intents.
type FeedServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

type PurchaseHandler struct {
	svc  PurchaseService
	uSvc UserGetter
	feed FeedServer
}

func NewPurchaseHandler(svc PurchaseService, uSvc UserGetter, feed FeedServer) *PurchaseHandler {
	return &PurchaseHandler{
		svc:  svc,
		uSvc: uSvc,
		feed: feed,
	}
}

// HandleCreatePurchaseIntent godoc
// @Summary      Request a purchase
// @Description  Records a pending purchase intent for the caller. Stock is not reserved.
// @Tags         purchase-intents
// @Accept       json
// @Produce      json
// @Param        request  body      request.PurchaseIntentRequest  true  "request body"
// @Success      201      {object}  domain.PurchaseIntent
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /purchase-intents [post]
// @Security     BearerAuth
func (h *PurchaseHandler) HandleCreatePurchaseIntent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PurchaseIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	intent, err := h.svc.RequestPurchase(ctx.Request.Context(), purchase.Request{
		StudentID: user.ID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", req.ProductID))
		case isSelectionError(err):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreatePurchaseIntent -> h.svc.RequestPurchase -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, intent)
}

// HandleListPurchaseIntents godoc
// @Summary      List purchase intents
// @Description  Members see their own intents; admins see every intent.
// @Tags         purchase-intents
// @Produce      json
// @Success      200  {array}   domain.PurchaseIntent
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /purchase-intents [get]
// @Security     BearerAuth
func (h *PurchaseHandler) HandleListPurchaseIntents(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var (
		intents []domain.PurchaseIntent
		err     error
	)
	if user.Role == domain.RoleAdmin {
		intents, err = h.svc.ListIntents(ctx.Request.Context())
	} else {
		intents, err = h.svc.ListIntentsForStudent(ctx.Request.Context(), user.ID)
	}
	if err != nil {
		err = fmt.Errorf("v1.HandleListPurchaseIntents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, intents)
}

// HandleFeed godoc
// @Summary      Purchase intent feed
// @Description  Websocket stream of newly recorded intents. Admin only.
// @Tags         purchase-intents
// @Success      101  {string}  string  "Switching Protocols to WebSocket"
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Router       /purchase-intents/feed [get]
// @Security     BearerAuth
func (h *PurchaseHandler) HandleFeed(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	if respErr := requireAdmin(user); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	// The upgrader has already replied on failure.
	if err := h.feed.ServeWS(ctx.Writer, ctx.Request); err != nil {
		zap.L().Warn("feed subscription failed", zap.String("userID", user.ID), zap.Error(err))
	}
}

func isSelectionError(err error) bool {
	for _, target := range []error{
		purchase.ErrSizeRequired,
		purchase.ErrColorRequired,
		purchase.ErrInvalidSize,
		purchase.ErrInvalidColor,
		purchase.ErrInvalidQuantity,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

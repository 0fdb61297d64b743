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
	"github.com/kravdojo/gym-api/internal/query"
	"github.com/kravdojo/gym-api/internal/service"
)

type ProductService interface {
	ListProducts(ctx context.Context, q string, f domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	Facets(ctx context.Context) (query.Facets, error)
}

type ProductHandler struct {
	svc ProductService
}

func NewProductHandler(svc ProductService) *ProductHandler {
	return &ProductHandler{
		svc: svc,
	}
}

// HandleListProducts godoc
// @Summary      List products
// @Description  Text search over name, description and category, combined with structured filters.
// @Tags         products
// @Produce      json
// @Param        q          query     string   false  "free-text search"
// @Param        category   query     string   false  "category slug"
// @Param        type       query     string   false  "product type slug"
// @Param        min_price  query     number   false  "inclusive lower price bound"
// @Param        max_price  query     number   false  "inclusive upper price bound"
// @Param        in_stock   query     boolean  false  "stock status"
// @Success      200        {array}   domain.Product
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products [get]
func (h *ProductHandler) HandleListProducts(ctx *gin.Context) {
	var req request.ProductQuery
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	products, err := h.svc.ListProducts(ctx.Request.Context(), req.Q, req.Filter())
	if err != nil {
		err = fmt.Errorf("v1.HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetFacets godoc
// @Summary      Product facets
// @Description  Categories, types, price bounds and stock counts for building filters.
// @Tags         products
// @Produce      json
// @Success      200  {object}  query.Facets
// @Failure      500  {object}  response.Err
// @Router       /products/facets [get]
func (h *ProductHandler) HandleGetFacets(ctx *gin.Context) {
	facets, err := h.svc.Facets(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetFacets -> h.svc.Facets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, facets)
}

// HandleGetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        productID  path      string  true  "product ID"
// @Success      200        {object}  domain.Product
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products/{productID} [get]
func (h *ProductHandler) HandleGetProduct(ctx *gin.Context) {
	productID := ctx.Param("productID")
	product, err := h.svc.GetProduct(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
			return
		}

		err = fmt.Errorf("v1.HandleGetProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}

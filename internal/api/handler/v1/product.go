package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/depotbar/stock-api/internal/api/handler/v1/request"
	"github.com/depotbar/stock-api/internal/api/handler/v1/response"
	"github.com/depotbar/stock-api/internal/domain"
	"github.com/depotbar/stock-api/internal/service"
)

type ProductService interface {
	AddProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	AddProducts(ctx context.Context, products []domain.Product) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id uint, patch service.ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	GetProduct(ctx context.Context, id uint) (domain.Product, error)
	GetProductByName(ctx context.Context, name string) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	LowStockProducts(ctx context.Context) ([]domain.Product, error)
}

type ProductHandler struct {
	svc ProductService
}

func NewProductHandler(svc ProductService) *ProductHandler {
	return &ProductHandler{
		svc: svc,
	}
}

// HandleCreateProduct godoc
// @Summary      Create one or many products
// @Tags         produit
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateProductRequest  true  "one product, or an array of products"
// @Success      201      {object}  domain.Product
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /produit/create [post]
func (h *ProductHandler) HandleCreateProduct(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// The endpoint accepts a single product or an array of products.
	var batch []request.CreateProductRequest
	if err = json.Unmarshal(body, &batch); err != nil {
		var single request.CreateProductRequest
		if err = json.Unmarshal(body, &single); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		batch = []request.CreateProductRequest{single}
	}

	products := make([]domain.Product, len(batch))
	for i := range batch {
		if err = batch[i].Validate(); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		products[i] = batch[i].ToDomain()
	}

	created, err := h.svc.AddProducts(ctx.Request.Context(), products)
	if err != nil {
		err = fmt.Errorf("HandleCreateProduct -> h.svc.AddProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if len(created) == 1 {
		ctx.JSON(http.StatusCreated, created[0])
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateProduct godoc
// @Summary      Update product fields
// @Tags         produit
// @Accept       json
// @Produce      json
// @Param        productID  path      int                           true  "product ID"
// @Param        request    body      request.UpdateProductRequest  true  "fields to update"
// @Success      200        {object}  domain.Product
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /produit/update/{productID} [put]
func (h *ProductHandler) HandleUpdateProduct(ctx *gin.Context) {
	id, err := parseProductID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateProductRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateProduct(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", id))
			return
		}

		err = fmt.Errorf("HandleUpdateProduct -> h.svc.UpdateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteProduct godoc
// @Summary      Delete a product
// @Description  Removes the product from the catalog. Historical sales and restocks keep their line items.
// @Tags         produit
// @Produce      json
// @Param        productID  path  int  true  "product ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /produit/delete/{productID} [delete]
func (h *ProductHandler) HandleDeleteProduct(ctx *gin.Context) {
	id, err := parseProductID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteProduct(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteProduct -> h.svc.DeleteProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// HandleGetProduct godoc
// @Summary      Get a product by ID
// @Tags         produit
// @Produce      json
// @Param        productID  path      int  true  "product ID"
// @Success      200        {object}  domain.Product
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /produit/{productID} [get]
func (h *ProductHandler) HandleGetProduct(ctx *gin.Context) {
	id, err := parseProductID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleGetAllProducts godoc
// @Summary      List the catalog
// @Tags         produit
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  response.Err
// @Router       /produit/getAllProd [get]
func (h *ProductHandler) HandleGetAllProducts(ctx *gin.Context) {
	products, err := h.svc.ListProducts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetAllProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetProductByName godoc
// @Summary      Get a product by name
// @Tags         produit
// @Produce      json
// @Param        name  path      string  true  "product name"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /produit/getProdByNom/{name} [get]
func (h *ProductHandler) HandleGetProductByName(ctx *gin.Context) {
	name := ctx.Param("name")

	product, err := h.svc.GetProductByName(ctx.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("product", "name", name))
			return
		}

		err = fmt.Errorf("HandleGetProductByName -> h.svc.GetProductByName -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleGetLowStockProducts godoc
// @Summary      List products at or below their minimum quantity
// @Tags         produit
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  response.Err
// @Router       /produit/getLowStock [get]
func (h *ProductHandler) HandleGetLowStockProducts(ctx *gin.Context) {
	products, err := h.svc.LowStockProducts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetLowStockProducts -> h.svc.LowStockProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func parseProductID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("productID"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product ID: %w", err)
	}

	return uint(id), nil
}

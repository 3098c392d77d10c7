package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/depotbar/stock-api/internal/api/handler/v1/request"
	"github.com/depotbar/stock-api/internal/api/handler/v1/response"
	"github.com/depotbar/stock-api/internal/domain"
	"github.com/depotbar/stock-api/internal/service"
)

type TransactionService interface {
	RecordSale(ctx context.Context, items []domain.SaleLineItem) (domain.Sale, []service.Warning, error)
	RecordRestock(ctx context.Context, items []domain.RestockLineItem) (domain.Restock, []service.Warning, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	GetSale(ctx context.Context, id uint) (domain.Sale, error)
	SalesByDate(ctx context.Context, date time.Time) ([]domain.Sale, error)
	ListRestocks(ctx context.Context) ([]domain.Restock, error)
}

type SaleHandler struct {
	svc TransactionService
}

func NewSaleHandler(svc TransactionService) *SaleHandler {
	return &SaleHandler{
		svc: svc,
	}
}

// HandleCreateSale godoc
// @Summary      Record a sale
// @Description  Applies the line items in order, decrementing product quantities (floored at zero). Skipped or clamped lines come back as warnings.
// @Tags         vente
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateSaleRequest  true  "sale line items"
// @Success      201      {object}  response.CreatedSale
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /vente/newVente [post]
func (h *SaleHandler) HandleCreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sale, warnings, err := h.svc.RecordSale(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrEmptyTransaction) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleCreateSale -> h.svc.RecordSale -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewCreatedSale(sale, warnings))
}

// HandleGetAllSales godoc
// @Summary      List sales, most recent first
// @Tags         vente
// @Produce      json
// @Success      200  {array}   response.Sale
// @Failure      500  {object}  response.Err
// @Router       /vente/getAllVente [get]
func (h *SaleHandler) HandleGetAllSales(ctx *gin.Context) {
	sales, err := h.svc.ListSales(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetAllSales -> h.svc.ListSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSales(sales))
}

// HandleGetSaleByID godoc
// @Summary      Get a sale by ID
// @Tags         vente
// @Produce      json
// @Param        saleID  path      int  true  "sale ID"
// @Success      200     {object}  response.Sale
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /vente/by-id/{saleID} [get]
func (h *SaleHandler) HandleGetSaleByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("saleID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid sale ID: %w", err)))
		return
	}

	sale, err := h.svc.GetSale(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sale", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetSaleByID -> h.svc.GetSale -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSale(sale))
}

// HandleGetSalesByDate godoc
// @Summary      List the sales of one calendar day
// @Tags         vente
// @Produce      json
// @Param        date  path      string  true  "date, YYYY-MM-DD"
// @Success      200   {array}   response.Sale
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /vente/by-date/{date} [get]
func (h *SaleHandler) HandleGetSalesByDate(ctx *gin.Context) {
	date, err := time.Parse("2006-01-02", ctx.Param("date"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %w", err)))
		return
	}

	sales, err := h.svc.SalesByDate(ctx.Request.Context(), date)
	if err != nil {
		err = fmt.Errorf("HandleGetSalesByDate -> h.svc.SalesByDate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSales(sales))
}

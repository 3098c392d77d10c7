package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/depotbar/stock-api/internal/api/handler/v1/request"
	"github.com/depotbar/stock-api/internal/api/handler/v1/response"
	"github.com/depotbar/stock-api/internal/service"
)

type RestockHandler struct {
	svc TransactionService
}

func NewRestockHandler(svc TransactionService) *RestockHandler {
	return &RestockHandler{
		svc: svc,
	}
}

// HandleCreateRestock godoc
// @Summary      Record a restock
// @Description  Applies the line items in order, incrementing product quantities. Skipped lines come back as warnings.
// @Tags         achat
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateRestockRequest  true  "restock line items"
// @Success      201      {object}  response.CreatedRestock
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /achat/new-achat [post]
func (h *RestockHandler) HandleCreateRestock(ctx *gin.Context) {
	var req request.CreateRestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	restock, warnings, err := h.svc.RecordRestock(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrEmptyTransaction) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleCreateRestock -> h.svc.RecordRestock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewCreatedRestock(restock, warnings))
}

// HandleGetAllRestocks godoc
// @Summary      List restocks, most recent first
// @Tags         achat
// @Produce      json
// @Success      200  {array}   response.Restock
// @Failure      500  {object}  response.Err
// @Router       /achat/get-all-achat [get]
func (h *RestockHandler) HandleGetAllRestocks(ctx *gin.Context) {
	restocks, err := h.svc.ListRestocks(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetAllRestocks -> h.svc.ListRestocks -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewRestocks(restocks))
}

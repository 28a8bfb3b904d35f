package handler

import (
	"net/http"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/apierror"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/middleware"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// Complete godoc
// @Summary      Complete a sale from the register cart
// @Description  Prices each line from the live catalog, applies the shop tax
// @Description  rate, persists the order with immutable item snapshots and
// @Description  decrements stock (floored at zero) in one transaction.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CompleteOrderRequest true "Cart"
// @Success      201 {object} dto.OrderResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/orders [post]
func (h *OrdersHandler) Complete(c *gin.Context) {
	var req dto.CompleteOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.CompleteOrder(c.Request.Context(), claims.TenantID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrdersHandler) List(c *gin.Context) {
	var filter repository.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid query: "+err.Error()))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.List(c.Request.Context(), claims.TenantID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Summary(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Summary(c.Request.Context(), claims.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

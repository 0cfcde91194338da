package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/storegate/backoffice/internal/domains/catalog/domain"
	catalogports "github.com/storegate/backoffice/internal/domains/catalog/ports"
	membersports "github.com/storegate/backoffice/internal/domains/members/ports"
	orderhttpmapper "github.com/storegate/backoffice/internal/domains/orders/adapters/http/mapper"
	ordersapp "github.com/storegate/backoffice/internal/domains/orders/application"
	ordersdomain "github.com/storegate/backoffice/internal/domains/orders/domain"
	ordersports "github.com/storegate/backoffice/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the order workflow service.
type OrderAPI struct {
	service ordersports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service) OrderAPI {
	return OrderAPI{service: service}
}

type placeOrderRequest struct {
	MemberID int64 `json:"memberId" binding:"required"`
	ItemID   int64 `json:"itemId" binding:"required"`
	Count    int64 `json:"count" binding:"required"`
}

type placeOrderResponse struct {
	ID int64 `json:"id"`
}

// Post /orders
// Place an order for one item
func (api *OrderAPI) PlaceOrder(c *gin.Context) {
	var payload placeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	orderID, err := api.service.PlaceOrder(c.Request.Context(), payload.MemberID, payload.ItemID, payload.Count)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, placeOrderResponse{ID: orderID})
}

// Post /orders/:orderId/cancel
// Cancel a placed order and restore its stock
func (api *OrderAPI) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.CancelOrder(c.Request.Context(), id); err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /orders/:orderId
// Find order by ID
func (api *OrderAPI) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Get /orders?memberName=&status=
// List orders filtered by buyer name and/or status
func (api *OrderAPI) FindOrders(c *gin.Context) {
	search := ordersdomain.OrderSearch{
		MemberName: c.Query("memberName"),
		Status:     ordersdomain.Status(c.Query("status")),
	}
	orders, err := api.service.FindOrders(c.Request.Context(), search)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrders(orders))
}

func respondOrderServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrNotEnoughStock),
		errors.Is(err, ordersdomain.ErrAlreadyCanceled):
		respondError(c, http.StatusConflict, err)
	case errors.Is(err, ordersports.ErrNotFound),
		errors.Is(err, catalogports.ErrNotFound),
		errors.Is(err, membersports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, ordersapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}

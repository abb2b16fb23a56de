package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	"github.com/baspana/backend/internal/server/http/dto"
)

// OrderHandler processes booking and purchase orders.
type OrderHandler struct {
	facade BookingFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade BookingFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), repository.NewOrder{
		UserID:                CurrentUserID(c),
		ObjectID:              req.ObjectID,
		ObjectKind:            model.ObjectKind(req.ObjectKind),
		OrderKind:             model.OrderKind(req.OrderKind),
		TotalPrice:            req.TotalPrice,
		PaymentKind:           model.PaymentKind(req.PaymentKind),
		BookingDeposit:        req.BookingDeposit,
		BookingExpirationDate: req.BookingExpirationDate,
		Status:                model.OrderStatus(req.Status),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// Get handles GET /api/orders/:id. Consumers only see their own orders.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if order.UserID != CurrentUserID(c) && CurrentRole(c) == string(model.RoleConsumer) {
		c.Status(http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// ListMine handles GET /api/orders. The filter is always scoped to the
// authenticated user.
func (h *OrderHandler) ListMine(c *gin.Context) {
	filter := orderFilterFromQuery(c)
	userID := CurrentUserID(c)
	filter.UserID = &userID

	h.list(c, filter)
}

// List handles GET /api/manage/orders with the unrestricted filter.
func (h *OrderHandler) List(c *gin.Context) {
	filter := orderFilterFromQuery(c)
	if raw := c.Query("user_id"); raw != "" {
		if v := int64(queryInt(c, "user_id", 0)); v > 0 {
			filter.UserID = &v
		}
	}

	h.list(c, filter)
}

func (h *OrderHandler) list(c *gin.Context, filter repository.OrderFilter) {
	orders, total, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Items: items, Total: total})
}

// Update handles PATCH /api/manage/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, orderUpdateFromDTO(req))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// Delete handles DELETE /api/manage/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func orderFilterFromQuery(c *gin.Context) repository.OrderFilter {
	filter := repository.OrderFilter{
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_desc") == "true",
		Limit:    queryInt(c, "limit", 0),
		Offset:   queryInt(c, "offset", 0),
	}
	if raw := c.Query("status"); raw != "" {
		status := model.OrderStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("object_kind"); raw != "" {
		kind := model.ObjectKind(raw)
		filter.ObjectKind = &kind
	}
	if raw := c.Query("order_kind"); raw != "" {
		kind := model.OrderKind(raw)
		filter.OrderKind = &kind
	}
	if raw := c.Query("payment_kind"); raw != "" {
		kind := model.PaymentKind(raw)
		filter.PaymentKind = &kind
	}
	if raw := c.Query("min_total_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MinTotalPrice = &v
		}
	}
	if raw := c.Query("max_total_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MaxTotalPrice = &v
		}
	}
	return filter
}

func orderUpdateFromDTO(req dto.UpdateOrderRequest) model.OrderUpdate {
	update := model.OrderUpdate{
		ObjectID:              req.ObjectID,
		TotalPrice:            req.TotalPrice,
		BookingDeposit:        req.BookingDeposit,
		BookingExpirationDate: req.BookingExpirationDate,
	}
	if req.ObjectKind != nil {
		kind := model.ObjectKind(*req.ObjectKind)
		update.ObjectKind = &kind
	}
	if req.OrderKind != nil {
		kind := model.OrderKind(*req.OrderKind)
		update.OrderKind = &kind
	}
	if req.PaymentKind != nil {
		kind := model.PaymentKind(*req.PaymentKind)
		update.PaymentKind = &kind
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		update.Status = &status
	}
	return update
}

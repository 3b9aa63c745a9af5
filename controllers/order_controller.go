package controllers

import (
	"tableside/entity"
	"tableside/pkg/resp"
	"tableside/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Store *services.StoreService }

func NewOrderController(s *services.StoreService) *OrderController {
	return &OrderController{Store: s}
}

type placeOrderReq struct {
	TableNumber string `json:"tableNumber" binding:"required"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
}

// POST /orders
// The response arrives after the simulated kitchen round-trip; an aborted
// request cancels the wait, not a placed order.
func (h *OrderController) Place(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Store.PlaceOrder(c.Request.Context(), services.OrderDetails{
		TableNumber:  req.TableNumber,
		CustomerName: req.Name,
		PhoneNumber:  req.Phone,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
// Dashboard order: pending first, then preparing, completed, cancelled;
// newest first within each group. ?sort=recent gives plain newest-first.
func (h *OrderController) List(c *gin.Context) {
	if c.Query("sort") == "recent" {
		resp.OK(c, h.Store.Orders())
		return
	}
	resp.OK(c, h.Store.OrdersByPriority())
}

// PATCH /admin/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Store.UpdateOrderStatus(c.Param("id"), body.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}

package controllers

import (
	"tableside/pkg/resp"
	"tableside/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Store *services.StoreService }

func NewCartController(s *services.StoreService) *CartController { return &CartController{Store: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	items, subtotal := h.Store.Cart()
	resp.OK(c, gin.H{"items": items, "subtotal": subtotal})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Store.AddToCart(body.ItemID); err != nil {
		fail(c, err)
		return
	}
	items, subtotal := h.Store.Cart()
	resp.Created(c, gin.H{"items": items, "subtotal": subtotal})
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQuantity(c *gin.Context) {
	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Store.UpdateCartQuantity(c.Param("id"), body.Delta); err != nil {
		fail(c, err)
		return
	}
	items, subtotal := h.Store.Cart()
	resp.OK(c, gin.H{"items": items, "subtotal": subtotal})
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	if err := h.Store.RemoveFromCart(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Store.ClearCart()
	resp.OK(c, gin.H{"cleared": true})
}

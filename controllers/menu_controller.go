package controllers

import (
	"tableside/entity"
	"tableside/pkg/resp"
	"tableside/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Store *services.StoreService }

func NewMenuController(s *services.StoreService) *MenuController { return &MenuController{Store: s} }

// GET /menu
func (h *MenuController) List(c *gin.Context) {
	resp.OK(c, h.Store.MenuItems())
}

type createMenuItemReq struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    entity.Category `json:"category" binding:"required"`
	Image       string          `json:"image"`
	Available   bool            `json:"available"`
	Stock       int             `json:"stock"`
}

// POST /admin/menu
func (h *MenuController) Create(c *gin.Context) {
	var req createMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Store.AddMenuItem(entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Available:   req.Available,
		Stock:       req.Stock,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	var req services.MenuItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Store.UpdateMenuItem(c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	if err := h.Store.DeleteMenuItem(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// PATCH /admin/menu/:id/availability
func (h *MenuController) ToggleAvailability(c *gin.Context) {
	if err := h.Store.ToggleItemAvailability(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"toggled": true})
}

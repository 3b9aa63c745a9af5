package routes

import (
	"tableside/controllers"
	"tableside/services"
	"tableside/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *services.StoreService, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	menuCtrl := controllers.NewMenuController(store)
	cartCtrl := controllers.NewCartController(store)
	orderCtrl := controllers.NewOrderController(store)

	// Customer
	r.GET("/menu", menuCtrl.List)

	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	r.POST("/orders", orderCtrl.Place)
	r.GET("/orders", orderCtrl.List)

	// Staff dashboard
	admin := r.Group("/admin")
	{
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.PATCH("/menu/:id/availability", menuCtrl.ToggleAvailability)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}

	// Live order feed for the dashboard
	r.GET("/ws/orders", hub.HandleWebSocket)
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Sridharj9095/amirtham-cooldrinks/configs"
	"github.com/Sridharj9095/amirtham-cooldrinks/controllers"
	"github.com/Sridharj9095/amirtham-cooldrinks/repository"
	"github.com/Sridharj9095/amirtham-cooldrinks/services"
	"github.com/Sridharj9095/amirtham-cooldrinks/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *logrus.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	kvRepo := repository.NewKVRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	catSvc := services.NewCategoryService(catRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	salesSvc := services.NewSalesService()
	settingsSvc := services.NewSettingsService(settingsRepo)
	cartSvc := services.NewCartService(kvRepo, log)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc, cfg.UploadDir)
	catCtrl := controllers.NewCategoryController(catSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	salesCtrl := controllers.NewSalesController(orderSvc, salesSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	cartCtrl := controllers.NewCartController(cartSvc, menuSvc)
	pendingCtrl := controllers.NewPendingOrderController(cartSvc)
	billingCtrl := controllers.NewBillingController(cartSvc, orderSvc, cfg.CheckoutTimeout)

	api := r.Group("/api")
	{
		api.GET("/menu-items", menuCtrl.List)
		api.POST("/menu-items", menuCtrl.Create)
		api.GET("/menu-items/:id", menuCtrl.Get)
		api.PUT("/menu-items/:id", menuCtrl.Update)
		api.DELETE("/menu-items/:id", menuCtrl.Delete)

		api.GET("/categories", catCtrl.List)
		api.POST("/categories", catCtrl.Create)
		api.PUT("/categories/:id", catCtrl.Update)
		api.DELETE("/categories/:id", catCtrl.Delete)

		api.POST("/orders", orderCtrl.Create)
		api.GET("/orders", orderCtrl.List)
		api.GET("/orders/:id", orderCtrl.Get)
		api.DELETE("/orders/:id", orderCtrl.Delete)
		api.DELETE("/orders/range/by-date", orderCtrl.DeleteRange)

		api.GET("/sales/monthly", salesCtrl.Monthly)
		api.GET("/sales/item", salesCtrl.Item)

		api.GET("/settings", settingsCtrl.Get)
		api.PUT("/settings", settingsCtrl.Update)
		api.GET("/settings/upi-id", settingsCtrl.GetUpiID)
		api.PUT("/settings/upi-id", settingsCtrl.SetUpiID)

		api.GET("/cart", cartCtrl.Get)
		api.POST("/cart/items", cartCtrl.Add)
		api.PATCH("/cart/items/qty", cartCtrl.SetQuantity)
		api.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		api.DELETE("/cart", cartCtrl.Clear)

		api.GET("/pending-orders", pendingCtrl.List)
		api.POST("/pending-orders", pendingCtrl.Save)
		api.GET("/pending-orders/:id", pendingCtrl.Get)
		api.PUT("/pending-orders/:id", pendingCtrl.Update)
		api.DELETE("/pending-orders/:id", pendingCtrl.Delete)
		api.POST("/pending-orders/:id/load", pendingCtrl.Load)

		api.POST("/checkout", billingCtrl.Checkout)
	}

	// mutation event stream, replaces storage polling
	hub := ws.NewEventHub(cartSvc, log)
	go hub.Run()
	r.GET("/ws/events", hub.HandleWebSocket)
}

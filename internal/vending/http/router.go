package http

import "github.com/gin-gonic/gin"

// NewRouter wires the public surface. The keepalive route stays open; every
// /api route requires a resolved user identity. Admin authorization happens
// in the application layer, not here, so the allow-list check cannot be
// bypassed by a different transport.
func NewRouter(vendingHandler *VendingHandler, adminHandler *AdminHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", vendingHandler.Keepalive)

	api := router.Group("/api", NewIdentityMiddleware())
	{
		api.GET("/items", vendingHandler.ListItems)
		api.GET("/balance", vendingHandler.GetBalance)
		api.POST("/buy/:"+ItemNameKey, vendingHandler.BuyItem)

		admin := api.Group("/admin")
		{
			admin.POST("/users/:"+TargetUserKey+"/coins", adminHandler.CreditUser)
			admin.POST("/items", adminHandler.CreateItem)
			admin.DELETE("/items/:"+ItemNameKey, adminHandler.DeleteItem)
			admin.PATCH("/items/:"+ItemNameKey, adminHandler.AdjustItem)
			admin.POST("/items/:"+ItemNameKey+"/secrets", adminHandler.AddSecrets)
		}
	}

	return router
}

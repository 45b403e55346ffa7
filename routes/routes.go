package routes

import (
	"github.com/sundap1986/Vehicle-Repair-Order-System/controllers"
	"github.com/sundap1986/Vehicle-Repair-Order-System/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	orderCtrl := controllers.NewOrderController(db)
	itemCtrl := controllers.NewLineItemController(db)

	// Orders
	r.GET("/", orderCtrl.Index)
	r.GET("/create_order", orderCtrl.CreateForm)
	r.POST("/create_order", orderCtrl.Create)
	r.GET("/order/:id", orderCtrl.Detail)
	r.POST("/update_status/:id", orderCtrl.UpdateStatus)

	// Line items (spare parts / labor)
	r.POST("/add_spare_part/:id", itemCtrl.AddSparePart)
	r.POST("/add_labor/:id", itemCtrl.AddLabor)
	r.GET("/delete_spare_part/:partId/:id", itemCtrl.DeleteSparePart)
	r.GET("/delete_labor/:laborId/:id", itemCtrl.DeleteLabor)

	// JSON API
	r.GET("/api/order_totals/:id", orderCtrl.Totals)
}

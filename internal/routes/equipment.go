package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

func runEquipmentRouter(
	g *echo.Group,
	equipmentService services.EquipmentServiceInterface,
	snapshotService services.SnapshotServiceInterface,
	logger *zap.Logger,
) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, snapshotService, logger)

	g.GET("/equipment", equipmentCtrl.GetEquipments)
	g.POST("/equipment", equipmentCtrl.AddEquipment)
	g.POST("/equipment/:id/checkout", equipmentCtrl.CheckOut)
	g.POST("/equipment/:id/checkin", equipmentCtrl.CheckIn)
	g.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
}

package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
	"inventory-system/pkg/service"
	appwebsocket "inventory-system/pkg/websocket"
)

func runWebSocketRouter(
	e *echo.Echo,
	hub *appwebsocket.Hub,
	jwtSvc service.JWTService,
	snapshotService services.SnapshotServiceInterface,
	logger *zap.Logger,
) {
	wsCtrl := controllers.NewWebSocketController(hub, jwtSvc, snapshotService, logger)

	// Токен проверяется внутри контроллера: браузерный WebSocket не умеет
	// выставлять заголовок Authorization.
	e.GET("/ws", wsCtrl.ServeWs)
}

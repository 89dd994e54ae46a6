package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/services"
)

func runAuthRouter(g *echo.Group, sessionService services.SessionServiceInterface, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(sessionService, logger)

	g.POST("/auth/session", authCtrl.CreateSession)
}

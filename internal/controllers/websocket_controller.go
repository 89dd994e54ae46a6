package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"inventory-system/internal/services"
	"inventory-system/pkg/service"
	appwebsocket "inventory-system/pkg/websocket"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketController struct {
	hub             *appwebsocket.Hub
	jwtService      service.JWTService
	snapshotService services.SnapshotServiceInterface
	logger          *zap.Logger
}

func NewWebSocketController(
	hub *appwebsocket.Hub,
	jwtService service.JWTService,
	snapshotService services.SnapshotServiceInterface,
	logger *zap.Logger,
) *WebSocketController {
	return &WebSocketController{
		hub:             hub,
		jwtService:      jwtService,
		snapshotService: snapshotService,
		logger:          logger,
	}
}

// ServeWs открывает живую подписку. Подписка не открывается без валидного
// токена, а сразу после регистрации клиент получает текущий полный снапшот,
// чтобы снять состояние загрузки, не дожидаясь первой мутации.
func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	tokenString := ctx.QueryParam("token")
	if tokenString == "" {
		return ctx.String(http.StatusUnauthorized, "Missing token")
	}

	claims, err := c.jwtService.ValidateToken(tokenString)
	if err != nil {
		return ctx.String(http.StatusUnauthorized, "Invalid token")
	}

	snapshot, err := c.snapshotService.GetSnapshot(ctx.Request().Context())
	if err != nil {
		c.logger.Error("WebSocket: не удалось собрать начальный снапшот", zap.Error(err))
		return ctx.String(http.StatusInternalServerError, "Snapshot unavailable")
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("WebSocket: не удалось улучшить соединение", zap.Error(err))
		return err
	}

	client := appwebsocket.NewClient(c.hub, conn, claims.IdentityID)

	// Начальный снапшот кладем в очередь до запуска насосов: подписчик
	// увидит его первой эмиссией.
	initial, err := json.Marshal(appwebsocket.Envelope{
		Type:      appwebsocket.MessageTypeSnapshot,
		Payload:   snapshot,
		Timestamp: time.Now().UTC(),
	})
	if err == nil {
		client.Send <- initial
	}

	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	c.logger.Info("WebSocket: подписчик успешно подключен", zap.String("identity", claims.IdentityID))
	return nil
}

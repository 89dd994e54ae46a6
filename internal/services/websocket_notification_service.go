package services

import (
	"go.uber.org/zap"

	"inventory-system/pkg/websocket"
)

// Интерфейс, чтобы можно было легко подменять в тестах
type WebSocketNotificationServiceInterface interface {
	BroadcastSnapshot(payload interface{}) error
}

// Конкретная реализация
type WebSocketNotificationService struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewWebSocketNotificationService(hub *websocket.Hub, logger *zap.Logger) WebSocketNotificationServiceInterface {
	return &WebSocketNotificationService{
		hub:    hub,
		logger: logger,
	}
}

// BroadcastSnapshot рассылает полный снапшот всем активным подписчикам.
func (s *WebSocketNotificationService) BroadcastSnapshot(payload interface{}) error {
	s.logger.Info("Рассылка снапшота подписчикам",
		zap.Int("subscribers", s.hub.SubscriberCount()),
	)
	return s.hub.Broadcast(payload, websocket.MessageTypeSnapshot)
}

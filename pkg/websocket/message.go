package websocket

import "time"

// Типы сообщений, которые сервер отправляет подписчикам.
const (
	MessageTypeSnapshot = "snapshot"
	MessageTypeError    = "error"
)

// Envelope - это "конверт", в котором мы отправляем наши сообщения.
// Он содержит тип сообщения, что позволяет подписчику понять, что делать.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

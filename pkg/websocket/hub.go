package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Hub управляет всеми подписчиками живой ленты и рассылкой снапшотов.
// Подписка коллективная: каждый зарегистрированный клиент получает каждый
// снапшот целиком, адресной доставки нет.
type Hub struct {
	clients    map[*Client]bool
	Register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			log.Printf("Подписчик зарегистрирован: identity %s", client.IdentityID)
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Printf("Подписчик отсоединен: identity %s", client.IdentityID)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Медленный клиент не должен задерживать рассылку:
					// отбрасываем его, последний снапшот он получит
					// при переподключении.
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast - главный метод для рассылки снапшота всем подписчикам.
func (h *Hub) Broadcast(payload interface{}, messageType string) error {
	envelope := Envelope{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	messageBytes, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("Ошибка сериализации сообщения для WebSocket: %v", err)
		return err
	}

	h.broadcast <- messageBytes
	return nil
}

// SubscriberCount возвращает число активных подписчиков.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

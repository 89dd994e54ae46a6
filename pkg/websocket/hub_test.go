package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveEnvelope(t *testing.T, send chan []byte) Envelope {
	t.Helper()
	select {
	case data, ok := <-send:
		require.True(t, ok, "канал подписчика не должен быть закрыт")
		var envelope Envelope
		require.NoError(t, json.Unmarshal(data, &envelope))
		return envelope
	case <-time.After(time.Second):
		t.Fatal("подписчик не получил сообщение")
		return Envelope{}
	}
}

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	go h.Run()

	first := NewClient(h, nil, "watcher-1")
	second := NewClient(h, nil, "watcher-2")
	h.Register <- first
	h.Register <- second

	require.NoError(t, h.Broadcast(map[string]string{"items": "все"}, MessageTypeSnapshot))

	for _, client := range []*Client{first, second} {
		envelope := receiveEnvelope(t, client.Send)
		assert.Equal(t, MessageTypeSnapshot, envelope.Type)
		assert.False(t, envelope.Timestamp.IsZero())
	}
	assert.Equal(t, 2, h.SubscriberCount())
}

func TestHub_SlowSubscriberDropped(t *testing.T) {
	h := NewHub()
	go h.Run()

	fast := NewClient(h, nil, "fast")
	slow := NewClient(h, nil, "slow")
	h.Register <- fast
	h.Register <- slow

	// Забиваем буфер медленного подписчика до отказа: следующая рассылка
	// не должна его ждать.
	for i := 0; i < cap(slow.Send); i++ {
		slow.Send <- []byte("{}")
	}

	require.NoError(t, h.Broadcast(map[string]string{}, MessageTypeSnapshot))

	envelope := receiveEnvelope(t, fast.Send)
	assert.Equal(t, MessageTypeSnapshot, envelope.Type, "быстрый подписчик получает снапшот несмотря на медленного")

	assert.Eventually(t, func() bool {
		return h.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond, "медленный подписчик должен быть отброшен")

	// Канал отброшенного подписчика закрыт: после буфера чтение возвращает !ok.
	for i := 0; i < cap(slow.Send); i++ {
		<-slow.Send
	}
	_, open := <-slow.Send
	assert.False(t, open, "канал отброшенного подписчика должен быть закрыт")
}

func TestHub_Unregister(t *testing.T) {
	h := NewHub()
	go h.Run()

	client := NewClient(h, nil, "watcher-1")
	h.Register <- client
	assert.Eventually(t, func() bool { return h.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)

	h.unregister <- client
	assert.Eventually(t, func() bool { return h.SubscriberCount() == 0 }, time.Second, 10*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open, "отписка закрывает канал подписчика")
}

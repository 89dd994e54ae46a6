package watcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/view"
	appwebsocket "inventory-system/pkg/websocket"
)

// Watcher - эталонный подписчик живой ленты: получает идентичность,
// держит ровно одну WebSocket-подписку, сворачивает эмиссии через чистый
// редьюсер и сверяет маркеры на поверхности отрисовки. Ленту он не
// переподключает: обрыв подписки терминален, процесс завершается.
type Watcher struct {
	serverURL      string
	bootstrapToken string
	httpClient     *http.Client
	loader         *view.EngineLoader
	logger         *zap.Logger
}

func New(serverURL, bootstrapToken string, logger *zap.Logger) *Watcher {
	return &Watcher{
		serverURL:      strings.TrimRight(serverURL, "/"),
		bootstrapToken: bootstrapToken,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		// Движок отрисовки грузится один раз на процесс.
		loader: view.NewEngineLoader(func() (view.MarkerSurface, error) {
			return NewConsoleSurface(logger), nil
		}),
		logger: logger,
	}
}

// Run выполняет полный цикл подписчика. Возвращается только при обрыве
// подписки, фатальной инициализации или отмене контекста.
func (w *Watcher) Run(ctx context.Context) error {
	session, err := w.createSession(ctx)
	if err != nil {
		// Фатальная инициализация: без идентичности подписка не открывается.
		return fmt.Errorf("не удалось получить идентичность: %w", err)
	}
	w.logger.Info("Идентичность получена",
		zap.String("identity", session.IdentityID),
		zap.Bool("anonymous", session.Anonymous),
	)

	surface, err := w.loader.Acquire()
	if err != nil {
		return fmt.Errorf("не удалось загрузить движок отрисовки: %w", err)
	}
	reconciler := view.NewMarkerReconciler(surface)

	conn, err := w.dial(ctx, session.AccessToken)
	if err != nil {
		return fmt.Errorf("не удалось открыть подписку: %w", err)
	}
	defer conn.Close()

	state := view.NewState()
	w.logger.Info("Подписка открыта, ожидание первого снапшота")

	// Закрытие по отмене контекста будит ReadMessage.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			state = view.Reduce(state, view.SubscriptionFailed{Message: err.Error()})
			w.logger.Error("Подписка оборвана", zap.String("error", state.ErrorMessage))
			return err
		}

		var envelope struct {
			Type      string          `json:"type"`
			Payload   json.RawMessage `json:"payload"`
			Timestamp time.Time       `json:"timestamp"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			w.logger.Warn("Нечитаемый конверт, пропускаем", zap.Error(err))
			continue
		}

		switch envelope.Type {
		case appwebsocket.MessageTypeSnapshot:
			var snapshot dto.SnapshotDTO
			if err := json.Unmarshal(envelope.Payload, &snapshot); err != nil {
				w.logger.Warn("Нечитаемый снапшот, пропускаем", zap.Error(err))
				continue
			}
			state = view.Reduce(state, view.SnapshotReceived{Items: snapshot.Items})
			reconciler.Reconcile(state.MapItems)
			w.logger.Info("Снапшот применен",
				zap.Int("records", len(state.Snapshot)),
				zap.Int("markers", reconciler.DrawnCount()),
			)
		case appwebsocket.MessageTypeError:
			state = view.Reduce(state, view.SubscriptionFailed{Message: string(envelope.Payload)})
			w.logger.Error("Сервер сообщил об ошибке подписки", zap.String("error", state.ErrorMessage))
			return fmt.Errorf("ошибка подписки: %s", state.ErrorMessage)
		default:
			w.logger.Debug("Неизвестный тип сообщения", zap.String("type", envelope.Type))
		}
	}
}

// createSession пробует обменять bootstrap-токен и ровно один раз
// откатывается на анонимную идентичность. Повторов нет.
func (w *Watcher) createSession(ctx context.Context) (*dto.SessionDTO, error) {
	if w.bootstrapToken != "" {
		session, err := w.requestSession(ctx, dto.SessionRequestDTO{BootstrapToken: w.bootstrapToken})
		if err == nil {
			return session, nil
		}
		w.logger.Warn("Обмен bootstrap-токена не удался, пробуем анонимный вход", zap.Error(err))
	}

	return w.requestSession(ctx, dto.SessionRequestDTO{})
}

func (w *Watcher) requestSession(ctx context.Context, payload dto.SessionRequestDTO) (*dto.SessionDTO, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.serverURL+"/api/auth/session", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("сервер ответил статусом %d", resp.StatusCode)
	}

	var wrapper struct {
		Status bool           `json:"status"`
		Body   dto.SessionDTO `json:"body"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, err
	}
	if wrapper.Body.AccessToken == "" {
		return nil, fmt.Errorf("в ответе нет токена сессии")
	}

	return &wrapper.Body, nil
}

func (w *Watcher) dial(ctx context.Context, token string) (*websocket.Conn, error) {
	u, err := url.Parse(w.serverURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/ws"
	u.RawQuery = "token=" + url.QueryEscape(token)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	return conn, err
}

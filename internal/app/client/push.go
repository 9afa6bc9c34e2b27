package client

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"golang.org/x/exp/slog"
)

// События push-канала. Сервер шлет конверты {"event": ..., "data": ...}.
const (
	eventJoin             = "join"
	eventLogMessage       = "log_message"
	eventPublishingStatus = "publishing_status"
)

type pushEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type joinPayload struct {
	Token    string `json:"token"`
	ClientID int    `json:"client_id"`
}

type logPayload struct {
	Data string `json:"data"`
	Type string `json:"type"`
}

type statusPayload struct {
	IsPublishing bool `json:"isPublishing"`
}

// PushChannel поддерживает единственное живое websocket-соединение с
// сервером. Политика переподключения явная: экспоненциальный backoff
// от 1 до 30 секунд, без ограничения числа попыток, сброс после
// успешного подключения. Цикл завершается только по Close (выход из
// системы) или когда учетных данных больше нет.
type PushChannel struct {
	url    string
	log    *slog.Logger
	dialer *websocket.Dialer

	// creds возвращает токен и идентификатор клиента для join-конверта.
	// ok=false означает, что сессии больше нет и цикл должен завершиться.
	creds    func() (token string, clientID int, ok bool)
	onLog    func(message, msgType string)
	onStatus func(isPublishing bool)
	onError  func(err error)

	mu     sync.Mutex
	cancel context.CancelFunc
	conn   *websocket.Conn
	done   chan struct{}
}

func newPushChannel(url string, log *slog.Logger) *PushChannel {
	return &PushChannel{
		url: url,
		log: log,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

// Open открывает push-канал. Если предыдущее соединение еще живо,
// сначала закрывает его: больше одного живого соединения не бывает.
func (p *PushChannel) Open(ctx context.Context) {
	p.Close()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go p.run(runCtx, done)
}

// Active сообщает, запущен ли цикл канала
func (p *PushChannel) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Close закрывает соединение и дожидается завершения цикла
func (p *PushChannel) Close() {
	p.mu.Lock()
	cancel := p.cancel
	conn := p.conn
	done := p.done
	p.cancel = nil
	p.conn = nil
	p.done = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		conn.Close()
	}
	if done != nil {
		<-done
	}
}

func (p *PushChannel) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // переподключаемся, пока жива сессия

	for {
		if ctx.Err() != nil {
			return
		}

		token, clientID, ok := p.creds()
		if !ok {
			p.log.Debug("Push-канал остановлен: сессии больше нет")
			return
		}

		err := p.session(ctx, token, clientID, bo)
		if ctx.Err() != nil {
			return
		}
		if err != nil && p.onError != nil {
			// Обрыв не фатален: транспорт переподключится сам
			p.onError(&ChannelError{Err: err})
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(bo.NextBackOff()):
		}
	}
}

// session устанавливает одно соединение и читает события до обрыва.
// Единственный цикл чтения сохраняет порядок событий сервера.
func (p *PushChannel) session(ctx context.Context, token string, clientID int, bo *backoff.ExponentialBackOff) error {
	conn, resp, err := p.dialer.DialContext(ctx, p.url, nil)
	if err != nil {
		return err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	p.mu.Lock()
	p.conn = conn
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		if p.conn == conn {
			p.conn = nil
		}
		p.mu.Unlock()
		conn.Close()
	}()

	// Идентифицируемся, чтобы сервер маршрутизировал события только нам
	joinData, _ := json.Marshal(joinPayload{Token: token, ClientID: clientID})
	if err := conn.WriteJSON(pushEnvelope{Event: eventJoin, Data: joinData}); err != nil {
		return err
	}

	bo.Reset()
	p.log.Debug("Push-канал подключен")

	// Закрываем соединение при отмене контекста, чтобы разблокировать чтение
	watch := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-watch:
		}
	}()
	defer close(watch)

	for {
		var env pushEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			return err
		}
		p.dispatch(env)
	}
}

func (p *PushChannel) dispatch(env pushEnvelope) {
	switch env.Event {
	case eventLogMessage:
		var msg logPayload
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			p.log.Warn("Некорректное событие log_message", "error", err)
			return
		}
		if p.onLog != nil {
			p.onLog(msg.Data, msg.Type)
		}
	case eventPublishingStatus:
		var status statusPayload
		if err := json.Unmarshal(env.Data, &status); err != nil {
			p.log.Warn("Некорректное событие publishing_status", "error", err)
			return
		}
		if p.onStatus != nil {
			p.onStatus(status.IsPublishing)
		}
	default:
		p.log.Debug("Неизвестное событие push-канала", "event", env.Event)
	}
}

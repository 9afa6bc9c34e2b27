package client

import (
	"context"
	"errors"
	"time"

	"pubdeck/internal/model"
)

// SyncAll выполняет полную синхронизацию: снимок данных заменяется
// целиком тем, что вернул сервер. Вызов без токена — ошибка
// программирования, запрос не отправляется, выполняется принудительный
// выход. Любой другой сбой первичной синхронизации тоже приводит к
// принудительному выходу: клиент сознательно трактует его как
// недоверенное состояние сессии, а не как сбой отображения.
func (a *App) SyncAll(ctx context.Context) (model.Dataset, error) {
	if !a.IsAuthenticated() {
		a.forceLogout()
		return model.Dataset{}, ErrNoSession
	}

	data, err := a.httpClient.InitialData(ctx)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			// Принудительный выход уже выполнен API-клиентом
			return model.Dataset{}, err
		}
		a.dataset.SetConnected(false)
		a.forceLogout()
		return model.Dataset{}, err
	}

	// Выход мог произойти, пока запрос был в полете — результат с
	// чужой сессией не применяем
	if !a.IsAuthenticated() {
		return model.Dataset{}, ErrNoSession
	}

	a.dataset.ReplaceAll(data.Dataset)
	a.dataset.SetConnected(true)

	a.mu.Lock()
	if data.ClientInfo != nil {
		a.state.ClientID = data.ClientInfo.ID
		a.state.ClientName = data.ClientInfo.Name
	}
	a.state.LastSync = time.Now()
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	a.log.Debug("Синхронизация завершена",
		"texts", len(data.Texts),
		"images", len(data.Images),
		"groups", len(data.Groups),
		"pages", len(data.Pages),
		"scheduled", len(data.ScheduledPosts),
	)

	return a.dataset.Snapshot(), nil
}

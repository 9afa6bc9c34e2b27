package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	gosync "sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"

	"pubdeck/internal/app/client/config"
	"pubdeck/internal/model"
)

// App — контекст приложения с явным жизненным циклом:
// создание → аутентификация → загрузка данных → завершение.
// Передается командам через контекст, глобальных переменных нет.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	dataset    *DatasetStore
	push       *PushChannel
	console    *ConsoleLog

	mu            gosync.RWMutex
	state         *AppState
	authenticated bool
}

// AppState хранит состояние приложения между запусками: идентификацию
// клиента и тему оформления. Токен лежит в отдельном файле.
type AppState struct {
	ClientID   int       `json:"client_id"`
	ClientName string    `json:"client_name"`
	Theme      string    `json:"theme"`
	LastSync   time.Time `json:"last_sync"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := loadAppState(cfg)
	if err != nil {
		log.Warn("Не удалось загрузить состояние приложения", "error", err)
		state = &AppState{}
	}

	app := &App{
		config:  cfg,
		log:     log,
		dataset: NewDatasetStore(),
		console: NewConsoleLog(),
		state:   state,
	}

	app.httpClient = newHTTPClient(cfg.BaseURL(), log)
	app.httpClient.onAuthFailure = app.forceLogout

	app.push = newPushChannel(cfg.PushURL(), log)
	app.push.creds = app.pushCredentials
	app.push.onLog = app.console.Append
	app.push.onStatus = app.dataset.SetPublishing
	app.push.onError = func(err error) {
		app.log.Warn("Сбой push-канала", "error", err)
		app.console.Append(err.Error(), "error")
	}

	// Восстанавливаем сессию по сохраненному токену без проверки на
	// сервере: валидность выяснится на первом аутентифицированном запросе
	if token, err := app.readToken(); err == nil && token != "" {
		app.httpClient.SetToken(token)
		app.authenticated = true
		if app.state.ClientID == 0 {
			if id, ok := clientIDFromToken(token); ok {
				app.state.ClientID = id
			}
		}
		log.Debug("Токен загружен из файла")
	}

	return app, nil
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	if _, err := os.Stat(cfg.StatePath); os.IsNotExist(err) {
		return &AppState{}, nil
	}

	data, err := os.ReadFile(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// saveAppState сохраняет состояние. Вызывающий держит a.mu.
func (a *App) saveAppState() error {
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(a.config.StatePath, data, 0600)
}

// clientIDFromToken достает идентификатор клиента из claims токена без
// проверки подписи — она дело сервера, клиенту нужен только subject
// для join-конверта push-канала.
func clientIDFromToken(token string) (int, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, false
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, false
	}

	id, err := strconv.Atoi(sub)
	if err != nil {
		return 0, false
	}

	return id, true
}

// Login выполняет вход и сохраняет токен для последующих запусков
func (a *App) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	result, err := a.httpClient.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.saveToken(result.AccessToken); err != nil {
		return nil, fmt.Errorf("ошибка сохранения токена: %w", err)
	}
	a.httpClient.SetToken(result.AccessToken)

	a.mu.Lock()
	a.authenticated = true
	a.state.ClientID = result.ClientID
	a.state.ClientName = result.ClientName
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	a.log.Info("Вход выполнен успешно", "client", result.ClientName)
	return result, nil
}

// Logout завершает сессию по запросу пользователя
func (a *App) Logout() {
	a.log.Info("Выход из системы")
	a.teardown()
}

// forceLogout вызывается при ответе 401/422 или сбое первичной
// синхронизации. Идемпотентен: повторные вызовы безопасны.
func (a *App) forceLogout() {
	a.log.Warn("Сессия недействительна, выполняется принудительный выход")
	a.teardown()
}

// teardown приводит клиент в состояние "не вошел": токен и
// идентификация очищаются вместе, канал закрывается, снимок данных
// сбрасывается. Тема оформления переживает выход.
func (a *App) teardown() {
	a.mu.Lock()
	a.authenticated = false
	a.state.ClientID = 0
	a.state.ClientName = ""
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	a.httpClient.SetToken("")
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		a.log.Warn("Не удалось удалить файл токена", "error", err)
	}

	a.push.Close()
	a.dataset.Clear()
}

// IsAuthenticated проверяет, есть ли активная сессия
func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// pushCredentials отдает учетные данные push-каналу
func (a *App) pushCredentials() (string, int, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.authenticated {
		return "", 0, false
	}
	token := a.httpClient.Token()
	if token == "" {
		return "", 0, false
	}
	return token, a.state.ClientID, true
}

// OpenPush открывает push-канал для текущей сессии
func (a *App) OpenPush(ctx context.Context) error {
	if !a.IsAuthenticated() {
		return ErrNoSession
	}
	a.push.Open(ctx)
	return nil
}

// ClosePush закрывает push-канал
func (a *App) ClosePush() {
	a.push.Close()
}

// Dataset возвращает хранилище снимка данных
func (a *App) Dataset() *DatasetStore {
	return a.dataset
}

// Console возвращает журнал консоли публикаций
func (a *App) Console() *ConsoleLog {
	return a.console
}

// ClientID возвращает идентификатор клиента
func (a *App) ClientID() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.ClientID
}

// ClientName возвращает отображаемое имя клиента
func (a *App) ClientName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.ClientName
}

// LastSync возвращает время последней успешной синхронизации
func (a *App) LastSync() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.LastSync
}

// Theme возвращает сохраненную тему оформления
func (a *App) Theme() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.state.Theme == "" {
		return "dark"
	}
	return a.state.Theme
}

// SetTheme сохраняет тему оформления. Значение непрозрачное, без схемы.
func (a *App) SetTheme(theme string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Theme = theme
	return a.saveAppState()
}

// ImageURL строит адрес изображения из серверного пути: берется
// последний сегмент пути и подставляется в каталог загрузок клиента.
func (a *App) ImageURL(serverPath string) string {
	if serverPath == "" {
		return ""
	}
	name := serverPath
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return fmt.Sprintf("%s/uploads/client_%d/%s", a.config.BaseURL(), a.ClientID(), name)
}

func (a *App) readToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (a *App) saveToken(token string) error {
	return os.WriteFile(a.config.TokenPath, []byte(token), 0600)
}

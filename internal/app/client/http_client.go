package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"pubdeck/internal/model"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string

	mu    sync.RWMutex
	token string

	// onAuthFailure вызывается при ответе 401/422 любого эндпоинта.
	// Сессия к этому моменту считается недействительной.
	onAuthFailure func()
}

func newHTTPClient(baseURL string, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   baseURL,
		userAgent: "Pubdeck-Client/1.0",
	}
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

// Token возвращает текущий токен
func (h *httpClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := h.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"path", path,
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}

	return resp, nil
}

// doMultipart отправляет тело без изменений: content-type задается
// транспортом по частям, JSON не навязывается.
func (h *httpClient) doMultipart(ctx context.Context, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Content-Type", contentType)
	if token := h.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}

	return resp, nil
}

// parseResponse разбирает ответ сервера по общему контракту:
//   - 401/422 — сессия недействительна: принудительный выход и ErrSessionExpired;
//   - прочие не-2xx — ServerError с сообщением из поля msg, если оно есть;
//   - 204 или пустое тело — успех без полезной нагрузки, result не заполняется.
func (h *httpClient) parseResponse(resp *http.Response, path string, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Path: path, Err: err}
	}

	h.log.Debug("Получен ответ",
		"path", path,
		"status", resp.StatusCode,
	)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusUnprocessableEntity {
		if h.onAuthFailure != nil {
			h.onAuthFailure()
		}
		return fmt.Errorf("%w (статус %d)", ErrSessionExpired, resp.StatusCode)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Msg string `json:"msg"`
		}
		_ = json.Unmarshal(body, &errResp)
		return &ServerError{Path: path, Status: resp.StatusCode, Msg: errResp.Msg}
	}

	if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return nil
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа %s: %w", path, err)
		}
	}

	return nil
}

// Login выполняет вход. Ответ 401 здесь означает неверные учетные данные,
// а не истекшую сессию, поэтому общий контракт parseResponse не применяется.
func (h *httpClient) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/login", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Path: "/api/auth/login", Err: err}
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Msg string `json:"msg"`
		}
		_ = json.Unmarshal(body, &errResp)
		if errResp.Msg == "" {
			errResp.Msg = "не удалось войти, проверьте учетные данные"
		}
		return nil, &ServerError{Path: "/api/auth/login", Status: resp.StatusCode, Msg: errResp.Msg}
	}

	var loginResp model.LoginResult
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return nil, fmt.Errorf("ошибка парсинга ответа входа: %w", err)
	}

	return &loginResp, nil
}

// InitialData загружает полный снимок данных клиента
func (h *httpClient) InitialData(ctx context.Context) (*model.InitialData, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/data/initial", nil)
	if err != nil {
		return nil, err
	}

	var data model.InitialData
	if err := h.parseResponse(resp, "/api/data/initial", &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// CreateText добавляет текст и возвращает обновленный список текстов
func (h *httpClient) CreateText(ctx context.Context, content string) ([]model.Text, error) {
	req := struct {
		Content string `json:"content"`
	}{Content: content}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/texts", req)
	if err != nil {
		return nil, err
	}

	var texts []model.Text
	if err := h.parseResponse(resp, "/api/texts", &texts); err != nil {
		return nil, err
	}

	return texts, nil
}

// UpdateText обновляет текст и возвращает обновленный список текстов
func (h *httpClient) UpdateText(ctx context.Context, id int, content string) ([]model.Text, error) {
	req := struct {
		Content string `json:"content"`
	}{Content: content}

	path := "/api/texts/" + strconv.Itoa(id)
	resp, err := h.doRequest(ctx, http.MethodPut, path, req)
	if err != nil {
		return nil, err
	}

	var texts []model.Text
	if err := h.parseResponse(resp, path, &texts); err != nil {
		return nil, err
	}

	return texts, nil
}

// GenerateTexts генерирует тексты по теме на стороне сервера
func (h *httpClient) GenerateTexts(ctx context.Context, topic string, count int) ([]model.Text, error) {
	req := struct {
		Topic string `json:"topic"`
		Count int    `json:"count"`
	}{Topic: topic, Count: count}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/texts/generate-ai", req)
	if err != nil {
		return nil, err
	}

	var texts []model.Text
	if err := h.parseResponse(resp, "/api/texts/generate-ai", &texts); err != nil {
		return nil, err
	}

	return texts, nil
}

// UploadImages загружает подготовленное multipart-тело
func (h *httpClient) UploadImages(ctx context.Context, body io.Reader, contentType string) ([]model.Image, error) {
	resp, err := h.doMultipart(ctx, "/api/images/upload", body, contentType)
	if err != nil {
		return nil, err
	}

	var images []model.Image
	if err := h.parseResponse(resp, "/api/images/upload", &images); err != nil {
		return nil, err
	}

	return images, nil
}

// CreateGroup добавляет группу
func (h *httpClient) CreateGroup(ctx context.Context, url, tags string) ([]model.Group, error) {
	req := struct {
		URL  string `json:"url"`
		Tags string `json:"tags"`
	}{URL: url, Tags: tags}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/groups", req)
	if err != nil {
		return nil, err
	}

	var groups []model.Group
	if err := h.parseResponse(resp, "/api/groups", &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// CreateGroupsBulk импортирует несколько групп за один запрос
func (h *httpClient) CreateGroupsBulk(ctx context.Context, urls []string, tags string) ([]model.Group, error) {
	req := struct {
		URLs []string `json:"urls"`
		Tags string   `json:"tags"`
	}{URLs: urls, Tags: tags}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/groups/bulk", req)
	if err != nil {
		return nil, err
	}

	var groups []model.Group
	if err := h.parseResponse(resp, "/api/groups/bulk", &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// CreatePage добавляет страницу
func (h *httpClient) CreatePage(ctx context.Context, name, pageURL string) ([]model.Page, error) {
	req := struct {
		Name    string `json:"name"`
		PageURL string `json:"page_url"`
	}{Name: name, PageURL: pageURL}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/pages", req)
	if err != nil {
		return nil, err
	}

	var pages []model.Page
	if err := h.parseResponse(resp, "/api/pages", &pages); err != nil {
		return nil, err
	}

	return pages, nil
}

// Suggest запрашивает у сервера связную пару текст+изображение для страницы
func (h *httpClient) Suggest(ctx context.Context, pageID int) (*model.Suggestion, error) {
	req := struct {
		PageID int `json:"page_id"`
	}{PageID: pageID}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/content/suggestion", req)
	if err != nil {
		return nil, err
	}

	var suggestion model.Suggestion
	if err := h.parseResponse(resp, "/api/content/suggestion", &suggestion); err != nil {
		return nil, err
	}

	return &suggestion, nil
}

// CreateScheduledPost планирует публикацию на странице
func (h *httpClient) CreateScheduledPost(ctx context.Context, pageID int, publishAt time.Time, textContent string, imageID int) ([]model.ScheduledPost, error) {
	req := struct {
		PageID      int    `json:"page_id"`
		PublishAt   string `json:"publish_at"`
		TextContent string `json:"text_content"`
		ImageID     *int   `json:"image_id"`
	}{
		PageID:      pageID,
		PublishAt:   publishAt.UTC().Format(time.RFC3339),
		TextContent: textContent,
	}
	if imageID > 0 {
		req.ImageID = &imageID
	}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/scheduled_posts", req)
	if err != nil {
		return nil, err
	}

	var posts []model.ScheduledPost
	if err := h.parseResponse(resp, "/api/scheduled_posts", &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// DeleteItem удаляет элемент указанного типа. Ответ может быть пустым (204).
func (h *httpClient) DeleteItem(ctx context.Context, itemType string, id int) (string, error) {
	path := fmt.Sprintf("/api/items/%s/%d", itemType, id)
	resp, err := h.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return "", err
	}

	var msgResp struct {
		Msg string `json:"msg"`
	}
	if err := h.parseResponse(resp, path, &msgResp); err != nil {
		return "", err
	}

	return msgResp.Msg, nil
}

// StartPublishing запускает массовую публикацию по группам
func (h *httpClient) StartPublishing(ctx context.Context, groupTags, contentTags string) (string, error) {
	req := struct {
		GroupTags   string `json:"group_tags"`
		ContentTags string `json:"content_tags"`
	}{GroupTags: groupTags, ContentTags: contentTags}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/publishing/start", req)
	if err != nil {
		return "", err
	}

	var msgResp struct {
		Msg string `json:"msg"`
	}
	if err := h.parseResponse(resp, "/api/publishing/start", &msgResp); err != nil {
		return "", err
	}

	return msgResp.Msg, nil
}

// StopPublishing останавливает массовую публикацию
func (h *httpClient) StopPublishing(ctx context.Context) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/publishing/stop", nil)
	if err != nil {
		return "", err
	}

	var msgResp struct {
		Msg string `json:"msg"`
	}
	if err := h.parseResponse(resp, "/api/publishing/stop", &msgResp); err != nil {
		return "", err
	}

	return msgResp.Msg, nil
}

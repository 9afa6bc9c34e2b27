package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"pubdeck/internal/model"
)

// Обработчики действий. Общий контракт: синхронная валидация ввода,
// запрос к API, затем замена одного затронутого списка коллекцией из
// ответа сервера. При ошибке снимок данных не меняется. Перед
// применением результата каждый обработчик проверяет, что сессия еще
// активна: выход не отменяет запросы в полете, но их результаты не
// должны воскрешать данные разлогиненного клиента.

// AddText добавляет ручной текст
func (a *App) AddText(ctx context.Context, content string) ([]model.Text, error) {
	if err := validateTextContent(content); err != nil {
		return nil, err
	}

	texts, err := a.httpClient.CreateText(ctx, content)
	if err != nil {
		return nil, err
	}

	if !a.IsAuthenticated() {
		return nil, ErrNoSession
	}
	a.dataset.ReplaceTexts(texts)
	return texts, nil
}

// UpdateText сохраняет отредактированный текст
func (a *App) UpdateText(ctx context.Context, id int, content string) ([]model.Text, error) {
	if err := validateTextContent(content); err != nil {
		return nil, err
	}

	texts, err := a.httpClient.UpdateText(ctx, id, content)
	if err != nil {
		return nil, err
	}

	if !a.IsAuthenticated() {
		return nil, ErrNoSession
	}
	a.dataset.ReplaceTexts(texts)
	return texts, nil
}

// GenerateAITexts генерирует тексты по теме на сервере
func (a *App) GenerateAITexts(ctx context.Context, topic string, count int) ([]model.Text, error) {
	if count <= 0 {
		count = 5
	}
	if err := validateTopic(topic); err != nil {
		return nil, err
	}
	if err := validateAICount(count); err != nil {
		return nil, err
	}

	texts, err := a.httpClient.GenerateTexts(ctx, topic, count)
	if err != nil {
		return nil, err
	}

	if !a.IsAuthenticated() {
		return nil, ErrNoSession
	}
	a.dataset.ReplaceTexts(texts)
	return texts, nil
}

// UploadImages загружает изображения одним multipart-запросом
func (a *App) UploadImages(ctx context.Context, paths []string, tags string) ([]model.Image, error) {
	if err := validateUploadFiles(paths); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, newValidationError("не удалось открыть файл %s: %v", path, err)
		}

		part, err := writer.CreateFormFile("images", filepath.Base(path))
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("ошибка подготовки multipart: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			file.Close()
			return nil, fmt.Errorf("ошибка чтения файла %s: %w", path, err)
		}
		file.Close()
	}

	if err := writer.WriteField("tags", tags); err != nil {
		return nil, fmt.Errorf("ошибка подготовки multipart: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("ошибка подготовки multipart: %w", err)
	}

	images, err := a.httpClient.UploadImages(ctx, &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	if !a.IsAuthenticated() {
		return nil, ErrNoSession
	}
	a.dataset.ReplaceImages(images)
	return images, nil
}

// AddGroup добавляет одну группу
func (a *App) AddGroup(ctx context.Context, url, tags string) ([]model.Group, error) {
	if err := validateDestinationURL(url); err != nil {
		return nil, err
	}

	groups, err := a.httpClient.CreateGroup(ctx, url, tags)
	if err != nil {
		return nil, err
	}

	if !a.IsAuthenticated() {
		return nil, ErrNoSession
	}
	a.dataset.ReplaceGroups(groups)
	return groups, nil
}

// ImportGroups импортирует несколько групп за один запрос
func (a *App) ImportGroups(ctx context.Context, urls []string, tags string) ([]model.Group, error) {
	if len(urls) == 0 {
		return nil, newValidationError("укажите хотя бы одну ссылку на группу")
	}
	for _, u := range urls {
		if err := validateDestinationURL(u); err != nil {
			return nil, err
		}
	}

	groups, err := a.httpClient.CreateGroupsBulk(ctx, urls, tags)
	if err != nil {
		return nil, err
	}

	if !a.IsAuthenticated() {
		return nil, ErrNoSession
	}
	a.dataset.ReplaceGroups(groups)
	return groups, nil
}

// AddPage добавляет страницу
func (a *App) AddPage(ctx context.Context, name, pageURL string) ([]model.Page, error) {
	if err := validatePageInput(name, pageURL); err != nil {
		return nil, err
	}

	pages, err := a.httpClient.CreatePage(ctx, name, pageURL)
	if err != nil {
		return nil, err
	}

	if !a.IsAuthenticated() {
		return nil, ErrNoSession
	}
	a.dataset.ReplacePages(pages)
	return pages, nil
}

// SuggestContent запрашивает у сервера пару текст+изображение для
// страницы. Снимок данных не меняется.
func (a *App) SuggestContent(ctx context.Context, pageID int) (*model.Suggestion, error) {
	if pageID <= 0 {
		return nil, newValidationError("выберите страницу для подбора контента")
	}

	return a.httpClient.Suggest(ctx, pageID)
}

// SchedulePost планирует публикацию на странице
func (a *App) SchedulePost(ctx context.Context, pageID int, publishAt time.Time, textContent string, imageID int) ([]model.ScheduledPost, error) {
	if err := validateScheduleInput(pageID, publishAt, textContent); err != nil {
		return nil, err
	}

	posts, err := a.httpClient.CreateScheduledPost(ctx, pageID, publishAt, textContent, imageID)
	if err != nil {
		return nil, err
	}

	if !a.IsAuthenticated() {
		return nil, ErrNoSession
	}
	a.dataset.ReplaceScheduledPosts(posts)
	return posts, nil
}

// DeleteItem удаляет элемент и запускает полную синхронизацию:
// удаление меняет производные счетчики в нескольких списках сразу,
// поэтому замены одного списка недостаточно.
func (a *App) DeleteItem(ctx context.Context, itemType string, id int) (string, error) {
	if !model.ValidItemType(itemType) {
		return "", newValidationError("неизвестный тип элемента: %s", itemType)
	}

	msg, err := a.httpClient.DeleteItem(ctx, itemType, id)
	if err != nil {
		return "", err
	}

	if _, err := a.SyncAll(ctx); err != nil {
		return "", err
	}

	return msg, nil
}

// StartPublishing запускает массовую публикацию по группам. Флаг
// публикации здесь не меняется: его переключает только событие
// publishing_status из push-канала, сервер — единственный арбитр того,
// началась ли публикация на самом деле.
func (a *App) StartPublishing(ctx context.Context, groupTags, contentTags string) (string, error) {
	if err := validatePublishingTags(groupTags, contentTags); err != nil {
		return "", err
	}

	return a.httpClient.StartPublishing(ctx, groupTags, contentTags)
}

// StopPublishing останавливает массовую публикацию. Флаг публикации
// не меняется по тем же причинам, что и в StartPublishing.
func (a *App) StopPublishing(ctx context.Context) (string, error) {
	return a.httpClient.StopPublishing(ctx)
}

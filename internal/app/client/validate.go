package client

import (
	"net/url"
	"strings"
	"time"
)

// Локальная валидация ввода. При ошибке запрос в сеть не отправляется,
// пользователю показывается предупреждение.

func validateTextContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return newValidationError("текст не может быть пустым")
	}
	return nil
}

func validateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return newValidationError("укажите тему для генерации текстов")
	}
	return nil
}

func validateAICount(count int) error {
	if count < 1 || count > 50 {
		return newValidationError("количество текстов должно быть от 1 до 50")
	}
	return nil
}

func validateDestinationURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return newValidationError("URL не может быть пустым")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return newValidationError("некорректный URL: %s", raw)
	}
	return nil
}

func validatePageInput(name, pageURL string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError("имя страницы не может быть пустым")
	}
	return validateDestinationURL(pageURL)
}

func validateScheduleInput(pageID int, publishAt time.Time, textContent string) error {
	if pageID <= 0 {
		return newValidationError("выберите страницу для публикации")
	}
	if publishAt.IsZero() {
		return newValidationError("укажите дату и время публикации")
	}
	if strings.TrimSpace(textContent) == "" {
		return newValidationError("текст публикации не может быть пустым")
	}
	return nil
}

func validatePublishingTags(groupTags, contentTags string) error {
	if strings.TrimSpace(groupTags) == "" || strings.TrimSpace(contentTags) == "" {
		return newValidationError("задайте теги групп и теги контента")
	}
	return nil
}

func validateUploadFiles(paths []string) error {
	if len(paths) == 0 {
		return newValidationError("укажите хотя бы один файл изображения")
	}
	return nil
}

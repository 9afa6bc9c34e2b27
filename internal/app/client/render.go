package client

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"pubdeck/internal/model"
)

// Рендеринг — чистые функции от снимка данных к тексту. Собственного
// состояния у рендерера нет: что в снимке, то и на экране.

const timeLayout = "2006-01-02 15:04"

var (
	colorSuccess = color.New(color.FgGreen)
	colorWarning = color.New(color.FgYellow)
	colorDanger  = color.New(color.FgRed)
	colorMuted   = color.New(color.FgHiBlack)
)

// RenderSummary строит сводку дашборда
func RenderSummary(d model.Dataset, clientName string, connected, publishing bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Панель управления ===\n\n")
	if clientName != "" {
		fmt.Fprintf(&b, "Клиент: %s\n", clientName)
	}

	status := colorDanger.Sprint("Отключено")
	if connected {
		status = colorSuccess.Sprint("Подключено")
	}
	fmt.Fprintf(&b, "Соединение: %s\n", status)

	pubStatus := colorMuted.Sprint("остановлена")
	if publishing {
		pubStatus = colorSuccess.Sprint("выполняется")
	}
	fmt.Fprintf(&b, "Публикация по группам: %s\n\n", pubStatus)

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Текстов:\t%d\n", len(d.Texts))
	fmt.Fprintf(w, "Изображений:\t%d\n", len(d.Images))
	fmt.Fprintf(w, "Групп:\t%d\n", len(d.Groups))
	fmt.Fprintf(w, "Страниц:\t%d\n", len(d.Pages))
	fmt.Fprintf(w, "Запланировано:\t%d\n", len(d.ScheduledPosts))
	w.Flush()

	return b.String()
}

// RenderTexts строит таблицу текстов
func RenderTexts(texts []model.Text) string {
	if len(texts) == 0 {
		return "Нет текстов\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tТекст\tТеги ИИ\tИспользований\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")

	for _, t := range texts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
			t.ID,
			truncate(t.Content, 60),
			t.AITags,
			usageTag(t.UsageCount),
		)
	}

	w.Flush()
	fmt.Fprintf(&b, "\nВсего текстов: %d\n", len(texts))
	return b.String()
}

// RenderImages строит таблицу изображений. imageURL строит адрес
// изображения из серверного пути.
func RenderImages(images []model.Image, imageURL func(string) string) string {
	if len(images) == 0 {
		return "Нет изображений\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tФайл\tТеги\tИспользований\tURL\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, img := range images {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			img.ID,
			truncate(baseName(img.Path), 40),
			img.ManualTags,
			usageTag(img.UsageCount),
			imageURL(img.Path),
		)
	}

	w.Flush()
	fmt.Fprintf(&b, "\nВсего изображений: %d\n", len(images))
	return b.String()
}

// RenderGroups строит таблицу групп
func RenderGroups(groups []model.Group) string {
	if len(groups) == 0 {
		return "Нет групп\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tURL\tТеги\t\n")
	fmt.Fprintf(w, "---\t---\t---\t\n")

	for _, g := range groups {
		fmt.Fprintf(w, "%d\t%s\t%s\t\n", g.ID, truncate(g.URL, 60), g.Tags)
	}

	w.Flush()
	fmt.Fprintf(&b, "\nВсего групп: %d\n", len(groups))
	return b.String()
}

// RenderPages строит таблицу страниц
func RenderPages(pages []model.Page) string {
	if len(pages) == 0 {
		return "Нет страниц\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tИмя\tURL\t\n")
	fmt.Fprintf(w, "---\t---\t---\t\n")

	for _, p := range pages {
		fmt.Fprintf(w, "%d\t%s\t%s\t\n", p.ID, p.Name, truncate(p.PageURL, 60))
	}

	w.Flush()
	fmt.Fprintf(&b, "\nВсего страниц: %d\n", len(pages))
	return b.String()
}

// RenderScheduledPosts строит таблицу отложенных публикаций
func RenderScheduledPosts(posts []model.ScheduledPost) string {
	if len(posts) == 0 {
		return "Нет запланированных публикаций\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tСтраница\tТекст\tИзображение\tВремя\tСтатус\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")

	for _, p := range posts {
		image := "без изображения"
		if p.ImagePath != "" {
			image = baseName(p.ImagePath)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			p.ID,
			p.PageName,
			truncate(p.TextContent, 40),
			truncate(image, 30),
			p.PublishAt.Local().Format(timeLayout),
			postStatusTag(p.Status),
		)
	}

	w.Flush()
	fmt.Fprintf(&b, "\nВсего публикаций: %d\n", len(posts))
	return b.String()
}

// RenderHistory строит таблицу журнала публикаций
func RenderHistory(entries []model.PublicationLogEntry) string {
	if len(entries) == 0 {
		return "История публикаций пуста\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Время\tДействие\tЦель\tСтатус\tСсылка\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, e := range entries {
		action := "Публикация на странице"
		if e.TargetType == model.TargetGroup {
			action = "Публикация в группе"
		}

		status := colorDanger.Sprint("Сбой")
		if e.Status == model.LogStatusSuccess {
			status = colorSuccess.Sprint("Завершено")
		}

		link := "N/A"
		if e.PublishedPostURL != "" {
			link = e.PublishedPostURL
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			e.Timestamp.Local().Format(timeLayout),
			action,
			truncate(e.TargetURL, 40),
			status,
			truncate(link, 50),
		)
	}

	w.Flush()
	return b.String()
}

// RenderConsole строит вывод консоли публикаций
func RenderConsole(entries []ConsoleEntry) string {
	if len(entries) == 0 {
		return "Консоль пуста\n"
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", e.Time.Format("15:04:05"), consoleLine(e))
	}
	return b.String()
}

func consoleLine(e ConsoleEntry) string {
	switch e.Type {
	case "success":
		return colorSuccess.Sprint(e.Message)
	case "warning":
		return colorWarning.Sprint(e.Message)
	case "error":
		return colorDanger.Sprint(e.Message)
	default:
		return e.Message
	}
}

// usageTag подсвечивает счетчик использований: с 7 — предупреждение,
// с 10 — опасность (контент пора обновлять).
func usageTag(count int) string {
	s := fmt.Sprintf("%d", count)
	switch {
	case count >= 10:
		return colorDanger.Sprint(s)
	case count >= 7:
		return colorWarning.Sprint(s)
	default:
		return s
	}
}

func postStatusTag(status string) string {
	switch status {
	case model.PostStatusCompleted:
		return colorSuccess.Sprint(status)
	case model.PostStatusFailed:
		return colorDanger.Sprint(status)
	default:
		return colorWarning.Sprint(status)
	}
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}

// NotifySuccess показывает уведомление об успехе
func NotifySuccess(title, message string) {
	fmt.Printf("✅ %s: %s\n", colorSuccess.Sprint(title), message)
}

// NotifyWarning показывает предупреждение
func NotifyWarning(title, message string) {
	fmt.Printf("⚠️  %s: %s\n", colorWarning.Sprint(title), message)
}

// NotifyError показывает уведомление об ошибке
func NotifyError(title, message string) {
	fmt.Printf("❌ %s: %s\n", colorDanger.Sprint(title), message)
}

// NotifyFromError переводит ошибку обработчика в пользовательское
// уведомление по таксономии: валидация — предупреждение без сети,
// истекшая сессия — приглашение войти снова, прочее — ошибка с
// сообщением сервера или транспорта.
func NotifyFromError(err error) {
	var validationErr *ValidationError
	var serverErr *ServerError
	var transportErr *TransportError
	var channelErr *ChannelError

	switch {
	case errors.As(err, &validationErr):
		NotifyWarning("Некорректный ввод", validationErr.Msg)
	case errors.Is(err, ErrSessionExpired):
		NotifyWarning("Сессия истекла", "Пожалуйста, войдите снова: pubdeck auth login")
	case errors.Is(err, ErrNoSession):
		NotifyWarning("Нет сессии", "Выполните вход: pubdeck auth login")
	case errors.As(err, &serverErr):
		NotifyError("Ошибка сервера", serverErr.Error())
	case errors.As(err, &transportErr):
		NotifyError("Ошибка соединения", transportErr.Error())
	case errors.As(err, &channelErr):
		NotifyWarning("Push-канал", channelErr.Error())
	default:
		NotifyError("Неожиданная ошибка", err.Error())
	}
}

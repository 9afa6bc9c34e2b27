package model

import "time"

// Статусы отложенных публикаций, назначаются сервером.
const (
	PostStatusPending   = "pending"
	PostStatusCompleted = "completed"
	PostStatusFailed    = "failed"
)

// Статусы записей журнала публикаций.
const (
	LogStatusSuccess = "Success"
	LogStatusFailed  = "Failed"
)

// Типы целей в журнале публикаций.
const (
	TargetGroup = "group"
	TargetPage  = "page"
)

type Text struct {
	ID         int    `json:"id"`
	Content    string `json:"content"`
	AITags     string `json:"ai_tags"`
	UsageCount int    `json:"usage_count"`
}

type Image struct {
	ID         int    `json:"id"`
	Path       string `json:"path"` // путь в файловой системе сервера
	ManualTags string `json:"manual_tags"`
	UsageCount int    `json:"usage_count"`
}

type Group struct {
	ID   int    `json:"id"`
	URL  string `json:"url"`
	Tags string `json:"tags"`
}

type Page struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	PageURL string `json:"page_url"`
}

type ScheduledPost struct {
	ID          int       `json:"id"`
	PageID      int       `json:"page_id"`
	PageName    string    `json:"page_name"`
	TextContent string    `json:"text_content"`
	ImagePath   string    `json:"image_path,omitempty"`
	PublishAt   time.Time `json:"publish_at"`
	Status      string    `json:"status"` // "pending", "completed", "failed"
}

type PublicationLogEntry struct {
	Timestamp        time.Time `json:"timestamp"`
	TargetType       string    `json:"target_type"` // "group", "page"
	TargetURL        string    `json:"target_url"`
	Status           string    `json:"status"` // "Success", "Failed"
	PublishedPostURL string    `json:"published_post_url,omitempty"`
}

// Dataset — полный снимок коллекций клиента, принадлежащих серверу.
// Клиент никогда не применяет частичные обновления: списки заменяются
// целиком тем, что вернул сервер.
type Dataset struct {
	Texts          []Text                `json:"texts"`
	Images         []Image               `json:"images"`
	Groups         []Group               `json:"groups"`
	Pages          []Page                `json:"pages"`
	ScheduledPosts []ScheduledPost       `json:"scheduled_posts"`
	PublicationLog []PublicationLogEntry `json:"publication_log"`
}

// ClientInfo — идентификация клиента, которую сервер может вернуть
// вместе с первичной выгрузкой данных.
type ClientInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// InitialData — ответ GET /api/data/initial.
type InitialData struct {
	Dataset
	ClientInfo *ClientInfo `json:"client_info,omitempty"`
}

// LoginResult — ответ POST /api/auth/login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	ClientID    int    `json:"clientId"`
	ClientName  string `json:"clientName"`
}

// Suggestion — ответ POST /api/content/suggestion. Единственный POST,
// который не возвращает обновленный список.
type Suggestion struct {
	Success bool   `json:"success"`
	Text    *Text  `json:"text,omitempty"`
	Image   *Image `json:"image,omitempty"`
	Message string `json:"message,omitempty"`
}

// ItemTypes — допустимые типы для DELETE /api/items/{type}/{id}.
var ItemTypes = []string{"texts", "images", "groups", "pages", "scheduled_posts"}

// ValidItemType проверяет, известен ли тип удаляемого элемента.
func ValidItemType(t string) bool {
	for _, known := range ItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

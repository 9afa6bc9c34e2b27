package client

import (
	"sync"

	"pubdeck/internal/model"
)

// DatasetStore хранит последний подтвержденный сервером снимок данных.
// Снимок заменяется целиком при полной синхронизации; отдельный список
// заменяется ответом мутирующего запроса по этому же списку. Слияние
// и частичные правки не выполняются никогда — источник истины сервер.
type DatasetStore struct {
	mu         sync.RWMutex
	data       model.Dataset
	connected  bool
	publishing bool
}

func NewDatasetStore() *DatasetStore {
	return &DatasetStore{}
}

// ReplaceAll заменяет весь снимок данных
func (s *DatasetStore) ReplaceAll(data model.Dataset) {
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

// Snapshot возвращает копию текущего снимка
func (s *DatasetStore) Snapshot() model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Clear сбрасывает снимок при выходе из системы
func (s *DatasetStore) Clear() {
	s.mu.Lock()
	s.data = model.Dataset{}
	s.connected = false
	s.publishing = false
	s.mu.Unlock()
}

func (s *DatasetStore) ReplaceTexts(texts []model.Text) {
	s.mu.Lock()
	s.data.Texts = texts
	s.mu.Unlock()
}

func (s *DatasetStore) ReplaceImages(images []model.Image) {
	s.mu.Lock()
	s.data.Images = images
	s.mu.Unlock()
}

func (s *DatasetStore) ReplaceGroups(groups []model.Group) {
	s.mu.Lock()
	s.data.Groups = groups
	s.mu.Unlock()
}

func (s *DatasetStore) ReplacePages(pages []model.Page) {
	s.mu.Lock()
	s.data.Pages = pages
	s.mu.Unlock()
}

func (s *DatasetStore) ReplaceScheduledPosts(posts []model.ScheduledPost) {
	s.mu.Lock()
	s.data.ScheduledPosts = posts
	s.mu.Unlock()
}

// SetConnected отмечает состояние соединения с сервером
func (s *DatasetStore) SetConnected(connected bool) {
	s.mu.Lock()
	s.connected = connected
	s.mu.Unlock()
}

// Connected возвращает состояние соединения
func (s *DatasetStore) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// SetPublishing обновляет флаг массовой публикации. Единственный
// источник изменения — событие publishing_status из push-канала.
func (s *DatasetStore) SetPublishing(publishing bool) {
	s.mu.Lock()
	s.publishing = publishing
	s.mu.Unlock()
}

// Publishing возвращает текущее состояние массовой публикации
func (s *DatasetStore) Publishing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.publishing
}

// Counters возвращает размеры коллекций для сводки дашборда
func (s *DatasetStore) Counters() (texts, images, groups, pages, scheduled int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Texts), len(s.data.Images), len(s.data.Groups),
		len(s.data.Pages), len(s.data.ScheduledPosts)
}

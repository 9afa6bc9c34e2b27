package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubdeck/internal/model"
)

func TestValidationBlocksNetwork(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	app := loginTestApp(t, ts)
	ts.ResetRequests()

	tests := []struct {
		name string
		call func() error
	}{
		{"пустой текст", func() error {
			_, err := app.AddText(context.Background(), "   ")
			return err
		}},
		{"пустая тема генерации", func() error {
			_, err := app.GenerateAITexts(context.Background(), "", 5)
			return err
		}},
		{"слишком много текстов", func() error {
			_, err := app.GenerateAITexts(context.Background(), "котики", 100)
			return err
		}},
		{"некорректный URL группы", func() error {
			_, err := app.AddGroup(context.Background(), "не-ссылка", "")
			return err
		}},
		{"страница без имени", func() error {
			_, err := app.AddPage(context.Background(), "", "https://example.com/p")
			return err
		}},
		{"публикация без времени", func() error {
			_, err := app.SchedulePost(context.Background(), 1, time.Time{}, "текст", 0)
			return err
		}},
		{"неизвестный тип удаления", func() error {
			_, err := app.DeleteItem(context.Background(), "users", 1)
			return err
		}},
		{"публикация без тегов", func() error {
			_, err := app.StartPublishing(context.Background(), "", "")
			return err
		}},
		{"импорт без ссылок", func() error {
			_, err := app.ImportGroups(context.Background(), nil, "")
			return err
		}},
		{"загрузка без файлов", func() error {
			_, err := app.UploadImages(context.Background(), nil, "")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}

	// Ни один запрос не ушел в сеть
	assert.Empty(t, ts.Requests())
}

func TestAddTextReplacesTextList(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()
	ts.texts = []model.Text{{ID: 1, Content: "существующий"}}

	app := loginTestApp(t, ts)

	// Локально список пуст: ответ сервера становится новым списком
	texts, err := app.AddText(context.Background(), "новый")
	require.NoError(t, err)
	require.Len(t, texts, 2)

	snapshot := app.Dataset().Snapshot()
	assert.Equal(t, texts, snapshot.Texts)

	// Остальные списки не тронуты
	assert.Empty(t, snapshot.Groups)
	assert.Empty(t, snapshot.Pages)
}

func TestUpdateText(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()
	ts.texts = []model.Text{{ID: 1, Content: "старый"}}

	app := loginTestApp(t, ts)

	texts, err := app.UpdateText(context.Background(), 1, "исправленный")
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, "исправленный", texts[0].Content)
}

func TestGenerateAITextsDefaultCount(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	app := loginTestApp(t, ts)

	// Нулевой счетчик заменяется значением по умолчанию
	texts, err := app.GenerateAITexts(context.Background(), "котики", 0)
	require.NoError(t, err)
	assert.Len(t, texts, 5)
}

func TestUploadImages(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	app := loginTestApp(t, ts)

	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpegdata"), 0600))

	images, err := app.UploadImages(context.Background(), []string{path}, "природа")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "природа", images[0].ManualTags)
	assert.Equal(t, images, app.Dataset().Snapshot().Images)
}

func TestImportGroups(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	app := loginTestApp(t, ts)

	groups, err := app.ImportGroups(context.Background(), []string{
		"https://example.com/g1",
		"https://example.com/g2",
	}, "спорт")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, groups, app.Dataset().Snapshot().Groups)
}

func TestImportGroupsRejectsBadURL(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	app := loginTestApp(t, ts)
	ts.ResetRequests()

	_, err := app.ImportGroups(context.Background(), []string{
		"https://example.com/g1",
		"ftp://example.com/bad",
	}, "")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, ts.Requests())
}

func TestSchedulePost(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	app := loginTestApp(t, ts)

	posts, err := app.SchedulePost(context.Background(), 1, time.Now().Add(time.Hour), "анонс", 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, model.PostStatusPending, posts[0].Status)
}

func TestDeleteItemTriggersFullResync(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()
	ts.initial = model.InitialData{
		Dataset: model.Dataset{
			Texts: []model.Text{{ID: 2, Content: "оставшийся"}},
		},
	}

	app := loginTestApp(t, ts)
	ts.ResetRequests()

	_, err := app.DeleteItem(context.Background(), "texts", 1)
	require.NoError(t, err)

	// После удаления — полная синхронизация, а не замена одного списка
	requests := ts.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "DELETE", requests[0].Method)
	assert.Equal(t, "/api/items/texts/1", requests[0].Path)
	assert.Equal(t, "GET", requests[1].Method)
	assert.Equal(t, "/api/data/initial", requests[1].Path)

	snapshot := app.Dataset().Snapshot()
	require.Len(t, snapshot.Texts, 1)
	assert.Equal(t, "оставшийся", snapshot.Texts[0].Content)
}

func TestStartPublishingDoesNotFlipFlag(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	app := loginTestApp(t, ts)

	msg, err := app.StartPublishing(context.Background(), "спорт", "новости")
	require.NoError(t, err)
	assert.Equal(t, "команда принята", msg)

	// Флаг меняет только событие publishing_status из push-канала
	assert.False(t, app.Dataset().Publishing())

	msg, err = app.StopPublishing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "команда принята", msg)
	assert.False(t, app.Dataset().Publishing())
}

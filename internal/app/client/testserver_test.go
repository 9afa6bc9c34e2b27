package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"pubdeck/internal/app/client/config"
	"pubdeck/internal/model"
)

const (
	testEmail    = "user@example.com"
	testPassword = "secret"
	testToken    = "test-token"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
}

// testServer — фальшивый API сервера на chi. Поведение настраивается
// полями: статус первичной выгрузки, содержимое снимка, ответы мутаций.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest

	initial       model.InitialData
	initialStatus int // 0 — успех

	texts  []model.Text
	groups []model.Group
	pages  []model.Page
	posts  []model.ScheduledPost
	images []model.Image

	deleteStatus int // 0 — 204 без тела
}

func newTestServer() *testServer {
	ts := &testServer{}

	r := chi.NewRouter()
	r.Use(ts.record)

	r.Post("/api/auth/login", ts.handleLogin)
	r.Get("/api/data/initial", ts.handleInitial)
	r.Post("/api/texts", ts.handleCreateText)
	r.Put("/api/texts/{id}", ts.handleUpdateText)
	r.Post("/api/texts/generate-ai", ts.handleGenerate)
	r.Post("/api/images/upload", ts.handleUpload)
	r.Post("/api/groups", ts.handleCreateGroup)
	r.Post("/api/groups/bulk", ts.handleBulkGroups)
	r.Post("/api/pages", ts.handleCreatePage)
	r.Post("/api/content/suggestion", ts.handleSuggest)
	r.Post("/api/scheduled_posts", ts.handleSchedule)
	r.Delete("/api/items/{type}/{id}", ts.handleDelete)
	r.Post("/api/publishing/start", ts.handlePublishing)
	r.Post("/api/publishing/stop", ts.handlePublishing)

	ts.Server = httptest.NewServer(r)
	return ts
}

func (ts *testServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		ts.requests = append(ts.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
		})
		ts.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (ts *testServer) Requests() []recordedRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	out := make([]recordedRequest, len(ts.requests))
	copy(out, ts.requests)
	return out
}

func (ts *testServer) ResetRequests() {
	ts.mu.Lock()
	ts.requests = nil
	ts.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

func (ts *testServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email != testEmail || req.Password != testPassword {
		writeMsg(w, http.StatusUnauthorized, "Неверные учетные данные")
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResult{
		AccessToken: testToken,
		ClientID:    7,
		ClientName:  "Acme",
	})
}

// requireAuth реализует серверный контракт недействительной сессии
func (ts *testServer) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		writeMsg(w, http.StatusUnauthorized, "Сессия недействительна")
		return false
	}
	return true
}

func (ts *testServer) handleInitial(w http.ResponseWriter, r *http.Request) {
	if ts.initialStatus != 0 {
		writeMsg(w, ts.initialStatus, "ошибка выгрузки")
		return
	}
	if !ts.requireAuth(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, ts.initial)
}

func (ts *testServer) handleCreateText(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	ts.mu.Lock()
	ts.texts = append(ts.texts, model.Text{ID: len(ts.texts) + 1, Content: req.Content})
	texts := ts.texts
	ts.mu.Unlock()

	writeJSON(w, http.StatusOK, texts)
}

func (ts *testServer) handleUpdateText(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var req struct {
		Content string `json:"content"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	ts.mu.Lock()
	for i := range ts.texts {
		if ts.texts[i].ID == id {
			ts.texts[i].Content = req.Content
		}
	}
	texts := ts.texts
	ts.mu.Unlock()

	writeJSON(w, http.StatusOK, texts)
}

func (ts *testServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	var req struct {
		Topic string `json:"topic"`
		Count int    `json:"count"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	ts.mu.Lock()
	for i := 0; i < req.Count; i++ {
		ts.texts = append(ts.texts, model.Text{
			ID:      len(ts.texts) + 1,
			Content: req.Topic + " #" + strconv.Itoa(i+1),
			AITags:  req.Topic,
		})
	}
	texts := ts.texts
	ts.mu.Unlock()

	writeJSON(w, http.StatusOK, texts)
}

func (ts *testServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeMsg(w, http.StatusBadRequest, "некорректный multipart")
		return
	}
	tags := r.FormValue("tags")

	ts.mu.Lock()
	for _, fh := range r.MultipartForm.File["images"] {
		ts.images = append(ts.images, model.Image{
			ID:         len(ts.images) + 1,
			Path:       "/srv/uploads/" + fh.Filename,
			ManualTags: tags,
		})
	}
	images := ts.images
	ts.mu.Unlock()

	writeJSON(w, http.StatusOK, images)
}

func (ts *testServer) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	var req struct {
		URL  string `json:"url"`
		Tags string `json:"tags"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	ts.mu.Lock()
	ts.groups = append(ts.groups, model.Group{ID: len(ts.groups) + 1, URL: req.URL, Tags: req.Tags})
	groups := ts.groups
	ts.mu.Unlock()

	writeJSON(w, http.StatusOK, groups)
}

func (ts *testServer) handleBulkGroups(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	var req struct {
		URLs []string `json:"urls"`
		Tags string   `json:"tags"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	ts.mu.Lock()
	for _, u := range req.URLs {
		ts.groups = append(ts.groups, model.Group{ID: len(ts.groups) + 1, URL: u, Tags: req.Tags})
	}
	groups := ts.groups
	ts.mu.Unlock()

	writeJSON(w, http.StatusOK, groups)
}

func (ts *testServer) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	var req struct {
		Name    string `json:"name"`
		PageURL string `json:"page_url"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	ts.mu.Lock()
	ts.pages = append(ts.pages, model.Page{ID: len(ts.pages) + 1, Name: req.Name, PageURL: req.PageURL})
	pages := ts.pages
	ts.mu.Unlock()

	writeJSON(w, http.StatusOK, pages)
}

func (ts *testServer) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, model.Suggestion{
		Success: true,
		Text:    &model.Text{ID: 1, Content: "предложенный текст"},
		Image:   &model.Image{ID: 2, Path: "/srv/uploads/cat.jpg"},
	})
}

func (ts *testServer) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	var req struct {
		PageID      int    `json:"page_id"`
		PublishAt   string `json:"publish_at"`
		TextContent string `json:"text_content"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	ts.mu.Lock()
	ts.posts = append(ts.posts, model.ScheduledPost{
		ID:          len(ts.posts) + 1,
		PageID:      req.PageID,
		TextContent: req.TextContent,
		Status:      model.PostStatusPending,
	})
	posts := ts.posts
	ts.mu.Unlock()

	writeJSON(w, http.StatusOK, posts)
}

func (ts *testServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	if ts.deleteStatus != 0 {
		writeMsg(w, ts.deleteStatus, "удаление запрещено")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ts *testServer) handlePublishing(w http.ResponseWriter, r *http.Request) {
	if !ts.requireAuth(w, r) {
		return
	}
	writeMsg(w, http.StatusOK, "команда принята")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Env:           config.EnvLocal,
		ServerAddress: strings.TrimPrefix(serverURL, "http://"),
		LogLevel:      "debug",
		ConfigDir:     dir,
		TokenPath:     filepath.Join(dir, "token"),
		StatePath:     filepath.Join(dir, "state.json"),
		PushPath:      "/ws",
		EnableTLS:     false,
	}
}

func newTestApp(t *testing.T, serverURL string) *App {
	t.Helper()
	app, err := New(testConfig(t, serverURL), testLogger())
	require.NoError(t, err)
	return app
}

// loginTestApp создает приложение и выполняет вход
func loginTestApp(t *testing.T, ts *testServer) *App {
	t.Helper()
	app := newTestApp(t, ts.URL)
	_, err := app.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	return app
}

package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"postcard/app/locale"
	"postcard/app/models"
	"postcard/app/repositories"
	"postcard/app/repositories/memory"
	"postcard/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("disk on fire")

// brokenCommentRepo fails every write so handlers hit their 500 path.
type brokenCommentRepo struct {
	*memory.CommentRepository
}

func (brokenCommentRepo) Create(*models.Comment) error { return errBroken }

func setupCards(t *testing.T, commentRepo repositories.CommentRepository) *Cards {
	postRepo := memory.NewPostRepository()
	if commentRepo == nil {
		commentRepo = memory.NewCommentRepository()
	}
	posts := services.NewPostService(postRepo)
	comments := services.NewCommentService(commentRepo, postRepo)

	cards, err := NewCards(posts, comments, locale.MustNew("en"), "Please write something", slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.NoError(t, err)
	cards.Now = func() time.Time { return time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, posts.CreatePost(&models.Post{
		ID:          "p1",
		Author:      models.Author{Name: "Ana", AvatarURL: "https://example.com/ana.png"},
		PublishedAt: time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC),
		Content:     []models.ContentBlock{{Type: models.BlockParagraph, Content: "Hi"}},
	}))
	return cards
}

func setupRouter(cards *Cards) *mux.Router {
	router := mux.NewRouter()
	pc := NewPostController(cards)
	cc := NewCommentController(cards)

	router.HandleFunc("/posts/{id}", pc.Show).Methods("GET")
	router.HandleFunc("/posts/{id}/comments", cc.Create).Methods("POST")
	router.HandleFunc("/api/posts", pc.Create).Methods("POST")
	router.HandleFunc("/api/posts/{id}/comments", cc.Create).Methods("POST")
	return router
}

func TestStatusFor(t *testing.T) {
	verr := (&models.Post{}).Validate()
	require.Error(t, verr)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("post x: %w", repositories.ErrNotFound), http.StatusNotFound},
		{"duplicate", repositories.ErrAlreadyExists, http.StatusConflict},
		{"empty comment", services.ErrEmptyComment, http.StatusUnprocessableEntity},
		{"validation", fmt.Errorf("invalid post: %w", verr), http.StatusBadRequest},
		{"other", errBroken, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestIsAPI(t *testing.T) {
	req := httptest.NewRequest("GET", "/posts/p1", nil)
	assert.False(t, isAPI(req))

	req.Header.Set("Accept", "application/json")
	assert.True(t, isAPI(req))

	assert.True(t, isAPI(httptest.NewRequest("GET", "/api/posts", nil)))
}

func TestShowNegotiatesJSON(t *testing.T) {
	router := setupRouter(setupCards(t, nil))

	req := httptest.NewRequest("GET", "/posts/p1", nil)
	req.Header.Set("Accept", "application/json")
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, req)

	require.Equal(t, http.StatusOK, rw.Code)
	var view map[string]any
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &view))
	assert.Equal(t, "p1", view["postId"])
	assert.Equal(t, "about 1 hour ago", view["published"].(map[string]any)["relative"])
	assert.NotContains(t, view, "InvalidMessage")
}

func TestShowEnglishLabels(t *testing.T) {
	router := setupRouter(setupCards(t, nil))

	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest("GET", "/posts/p1", nil))

	require.Equal(t, http.StatusOK, rw.Code)
	body := rw.Body.String()
	assert.Contains(t, body, `<html lang="en">`)
	assert.Contains(t, body, "Leave your feedback")
	assert.Contains(t, body, `title="January 2 at 11:00"`)
}

func TestCreateCommentStoreFailure(t *testing.T) {
	router := setupRouter(setupCards(t, brokenCommentRepo{memory.NewCommentRepository()}))

	t.Run("html", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/posts/p1/comments", strings.NewReader("comment=hi"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rw := httptest.NewRecorder()
		router.ServeHTTP(rw, req)

		assert.Equal(t, http.StatusInternalServerError, rw.Code)
	})

	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/posts/p1/comments", strings.NewReader(`{"content":"hi"}`))
		rw := httptest.NewRecorder()
		router.ServeHTTP(rw, req)

		assert.Equal(t, http.StatusInternalServerError, rw.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &body))
		assert.Contains(t, body["error"], errBroken.Error())
	})
}

func TestCreateCommentInvalidMessage(t *testing.T) {
	router := setupRouter(setupCards(t, nil))

	req := httptest.NewRequest("POST", "/posts/p1/comments", strings.NewReader("comment="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rw.Code)
	assert.Contains(t, rw.Body.String(), "Please write something")
}

func TestInvalidMessageFallsBackToLocale(t *testing.T) {
	posts := services.NewPostService(memory.NewPostRepository())
	comments := services.NewCommentService(memory.NewCommentRepository(), memory.NewPostRepository())

	tests := []struct {
		tag, configured, want string
	}{
		{"pt_BR", "", "EEEEEEEEEEEEEEEEEPA"},
		{"en", "", "Whoa! Write something first"},
		{"en", "Nope", "Nope"},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.configured, func(t *testing.T) {
			cards, err := NewCards(posts, comments, locale.MustNew(tt.tag), tt.configured, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cards.InvalidMessage)
		})
	}
}

func TestCreatePostValidationMessage(t *testing.T) {
	router := setupRouter(setupCards(t, nil))

	body := `{"id":"p2","author":{"avatarUrl":"https://example.com/a.png"},"publishedAt":"2024-01-01T00:00:00Z"}`
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest("POST", "/api/posts", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rw.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Name")
	assert.Contains(t, resp["error"], "required")
}

func TestCardsLoad(t *testing.T) {
	cards := setupCards(t, nil)

	card, err := cards.Load("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", card.Post().ID)
	assert.Empty(t, card.Comments())

	_, err = cards.Load("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

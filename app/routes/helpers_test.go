package routes

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"postcard/app/controllers"
	"postcard/app/locale"
	"postcard/app/models"
	"postcard/app/repositories/memory"
	"postcard/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const invalidMessage = "EEEEEEEEEEEEEEEEEPA"

var (
	publishedAt = time.Date(2024, time.May, 3, 20, 0, 0, 0, time.UTC)
	testNow     = publishedAt.Add(3 * time.Hour)
)

type testEnv struct {
	router   *mux.Router
	posts    *services.PostService
	comments *services.CommentService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	postRepo := memory.NewPostRepository()
	commentRepo := memory.NewCommentRepository()
	posts := services.NewPostService(postRepo)
	comments := services.NewCommentService(commentRepo, postRepo)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cards, err := controllers.NewCards(posts, comments, locale.MustNew("pt_BR"), invalidMessage, logger)
	require.NoError(t, err)
	cards.Now = func() time.Time { return testNow }

	require.NoError(t, posts.CreatePost(&models.Post{
		ID: "p1",
		Author: models.Author{
			Name:      "Diego Fernandes",
			AvatarURL: "https://github.com/diego3g.png",
			Role:      "CTO @Rocketseat",
		},
		PublishedAt: publishedAt,
		Content: []models.ContentBlock{
			{Type: models.BlockParagraph, Content: "Hello"},
			{Type: models.BlockLink, Content: "example.com", Href: "https://example.com"},
		},
	}))

	return &testEnv{
		router:   SetupRoutes(cards, logger),
		posts:    posts,
		comments: comments,
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	e.router.ServeHTTP(rw, req)
	return rw
}

func formRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(method, path, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

func (e *testEnv) addComment(t *testing.T, content string) *models.Comment {
	t.Helper()
	comment, err := e.comments.CreateComment("p1", content)
	require.NoError(t, err)
	return comment
}

func (e *testEnv) commentTexts(t *testing.T) []string {
	t.Helper()
	comments, err := e.comments.ListPostComments("p1")
	require.NoError(t, err)
	texts := make([]string, 0, len(comments))
	for _, c := range comments {
		texts = append(texts, c.Content)
	}
	return texts
}

package services

import (
	"errors"
	"strings"
	"testing"

	"postcard/app/models"
	"postcard/app/repositories"
	"postcard/app/repositories/memory"
	"postcard/app/repositories/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingCommentRepo fails every write to exercise error wrapping.
type failingCommentRepo struct {
	*memory.CommentRepository
}

var errDiskFull = errors.New("disk full")

func (f failingCommentRepo) Create(*models.Comment) error { return errDiskFull }

func setupCommentService(t *testing.T) (*CommentService, *models.Post) {
	posts := memory.NewPostRepository()
	post := repotest.NewPost("p1")
	require.NoError(t, posts.Create(post))
	return NewCommentService(memory.NewCommentRepository(), posts), post
}

func contents(comments []*models.Comment) []string {
	out := make([]string, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.Content)
	}
	return out
}

func TestCommentService(t *testing.T) {
	service, post := setupCommentService(t)

	var created *models.Comment
	t.Run("create comment", func(t *testing.T) {
		var err error
		created, err = service.CreateComment(post.ID, "Nice post")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, post.ID, created.PostID)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("text is stored verbatim", func(t *testing.T) {
		comment, err := service.CreateComment(post.ID, "  spaced <b>out</b>  ")
		require.NoError(t, err)
		got, err := service.GetComment(comment.ID)
		require.NoError(t, err)
		assert.Equal(t, "  spaced <b>out</b>  ", got.Content)
	})

	t.Run("empty comment", func(t *testing.T) {
		before, err := service.ListPostComments(post.ID)
		require.NoError(t, err)

		_, err = service.CreateComment(post.ID, "")
		assert.ErrorIs(t, err, ErrEmptyComment)

		after, err := service.ListPostComments(post.ID)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("too long comment", func(t *testing.T) {
		_, err := service.CreateComment(post.ID, strings.Repeat("x", 1001))
		assert.Error(t, err)
		assert.True(t, models.IsValidationError(err))
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := service.CreateComment("missing", "hello")
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		_, err = service.ListPostComments("missing")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("get comment", func(t *testing.T) {
		comment, err := service.GetComment(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Nice post", comment.Content)
	})

	t.Run("delete comment", func(t *testing.T) {
		require.NoError(t, service.DeleteComment(created.ID))
		_, err := service.GetComment(created.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		assert.ErrorIs(t, service.DeleteComment(created.ID), repositories.ErrNotFound)
	})
}

func TestDeletePostComment(t *testing.T) {
	service, post := setupCommentService(t)
	comment, err := service.CreateComment(post.ID, "mine")
	require.NoError(t, err)

	err = service.DeletePostComment("other-post", comment.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	_, err = service.GetComment(comment.ID)
	assert.NoError(t, err, "comment on another post must survive")

	assert.NoError(t, service.DeletePostComment(post.ID, comment.ID))
}

func TestDeleteCommentsByContent(t *testing.T) {
	service, post := setupCommentService(t)
	for _, text := range []string{"a", "b", "a"} {
		_, err := service.CreateComment(post.ID, text)
		require.NoError(t, err)
	}

	removed, err := service.DeleteCommentsByContent(post.ID, "a")
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	list, err := service.ListPostComments(post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, contents(list))

	removed, err = service.DeleteCommentsByContent(post.ID, "zzz")
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCreateCommentRepositoryError(t *testing.T) {
	posts := memory.NewPostRepository()
	require.NoError(t, posts.Create(repotest.NewPost("p1")))
	service := NewCommentService(failingCommentRepo{memory.NewCommentRepository()}, posts)

	_, err := service.CreateComment("p1", "hello")
	assert.ErrorIs(t, err, errDiskFull)
}

// deleteLimitRepo fails every Delete after the first n.
type deleteLimitRepo struct {
	*memory.CommentRepository
	n int
}

func (r *deleteLimitRepo) Delete(id string) error {
	if r.n == 0 {
		return errDiskFull
	}
	r.n--
	return r.CommentRepository.Delete(id)
}

func TestDeleteCommentsByContentPartialFailure(t *testing.T) {
	posts := memory.NewPostRepository()
	require.NoError(t, posts.Create(repotest.NewPost("p1")))
	repo := &deleteLimitRepo{CommentRepository: memory.NewCommentRepository(), n: 1}
	service := NewCommentService(repo, posts)

	var first string
	for _, text := range []string{"a", "b", "a"} {
		c, err := service.CreateComment("p1", text)
		require.NoError(t, err)
		if first == "" {
			first = c.ID
		}
	}

	removed, err := service.DeleteCommentsByContent("p1", "a")
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, []string{first}, removed)

	list, err := service.ListPostComments("p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, contents(list))
}

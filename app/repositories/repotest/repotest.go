// Package repotest holds behavior checks shared by every repository backend.
package repotest

import (
	"fmt"
	"testing"
	"time"

	"postcard/app/models"
	"postcard/app/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns fresh, empty repositories sharing one backend.
type Factory func(t *testing.T) (repositories.PostRepository, repositories.CommentRepository)

// NewPost returns a valid post with the given ID.
func NewPost(id string) *models.Post {
	return &models.Post{
		ID: id,
		Author: models.Author{
			Name:      "Maik Brito",
			AvatarURL: "https://github.com/maykbrito.png",
			Role:      "Educator @Rocketseat",
		},
		PublishedAt: time.Date(2022, time.May, 10, 20, 0, 0, 0, time.UTC),
		Content: []models.ContentBlock{
			{Type: models.BlockParagraph, Content: "Fala pessoal"},
			{Type: models.BlockLink, Content: "devonlane.design", Href: "https://devonlane.design"},
		},
	}
}

// NewComment returns a ready-to-store comment on postID.
func NewComment(postID, content string) *models.Comment {
	return &models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func contents(comments []*models.Comment) []string {
	out := make([]string, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.Content)
	}
	return out
}

// RunPostRepositoryTests checks the PostRepository contract.
func RunPostRepositoryTests(t *testing.T, newRepos Factory) {
	t.Run("create and get post", func(t *testing.T) {
		posts, _ := newRepos(t)
		post := NewPost("p1")
		require.NoError(t, posts.Create(post))

		got, err := posts.GetByID("p1")
		require.NoError(t, err)
		assert.Equal(t, post.Author, got.Author)
		assert.Equal(t, post.Content, got.Content)
		assert.True(t, post.PublishedAt.Equal(got.PublishedAt))
	})

	t.Run("duplicate post", func(t *testing.T) {
		posts, _ := newRepos(t)
		require.NoError(t, posts.Create(NewPost("p1")))
		assert.ErrorIs(t, posts.Create(NewPost("p1")), repositories.ErrAlreadyExists)
	})

	t.Run("missing post", func(t *testing.T) {
		posts, _ := newRepos(t)
		_, err := posts.GetByID("nope")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("list posts", func(t *testing.T) {
		posts, _ := newRepos(t)
		for i := 1; i <= 3; i++ {
			require.NoError(t, posts.Create(NewPost(fmt.Sprintf("p%d", i))))
		}
		list, err := posts.List()
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "p1", list[0].ID)
		assert.Equal(t, "p3", list[2].ID)
	})
}

// RunCommentRepositoryTests checks the CommentRepository contract.
func RunCommentRepositoryTests(t *testing.T, newRepos Factory) {
	t.Run("create and get comment", func(t *testing.T) {
		_, comments := newRepos(t)
		comment := NewComment("p1", "Muito bom!")
		require.NoError(t, comments.Create(comment))

		got, err := comments.GetByID(comment.ID)
		require.NoError(t, err)
		assert.Equal(t, comment.Content, got.Content)
		assert.Equal(t, comment.PostID, got.PostID)
		assert.True(t, comment.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("duplicate comment id", func(t *testing.T) {
		_, comments := newRepos(t)
		comment := NewComment("p1", "once")
		require.NoError(t, comments.Create(comment))
		assert.ErrorIs(t, comments.Create(comment), repositories.ErrAlreadyExists)
	})

	t.Run("list keeps creation order per post", func(t *testing.T) {
		_, comments := newRepos(t)
		for _, text := range []string{"a", "b", "a", "c"} {
			require.NoError(t, comments.Create(NewComment("p1", text)))
		}
		require.NoError(t, comments.Create(NewComment("p10", "other post")))

		list, err := comments.ListByPost("p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "a", "c"}, contents(list))

		list, err = comments.ListByPost("p10")
		require.NoError(t, err)
		assert.Equal(t, []string{"other post"}, contents(list))
	})

	t.Run("list empty post", func(t *testing.T) {
		_, comments := newRepos(t)
		list, err := comments.ListByPost("empty")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("delete removes only the addressed duplicate", func(t *testing.T) {
		_, comments := newRepos(t)
		first := NewComment("p1", "a")
		second := NewComment("p1", "b")
		third := NewComment("p1", "a")
		for _, c := range []*models.Comment{first, second, third} {
			require.NoError(t, comments.Create(c))
		}

		require.NoError(t, comments.Delete(first.ID))

		list, err := comments.ListByPost("p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, contents(list))
		assert.Equal(t, third.ID, list[1].ID)

		_, err = comments.GetByID(first.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("delete missing comment", func(t *testing.T) {
		_, comments := newRepos(t)
		assert.ErrorIs(t, comments.Delete(uuid.NewString()), repositories.ErrNotFound)
	})
}

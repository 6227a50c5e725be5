package repositories_test

import (
	"bytes"
	"testing"

	"postcard/app/repositories"
	"postcard/app/repositories/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBadgerRepos(t *testing.T) (repositories.PostRepository, repositories.CommentRepository) {
	store, err := repositories.OpenBadgerStore("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store.Posts, store.Comments
}

func TestBadgerPostRepository(t *testing.T) {
	repotest.RunPostRepositoryTests(t, newBadgerRepos)
}

func TestBadgerCommentRepository(t *testing.T) {
	repotest.RunCommentRepositoryTests(t, newBadgerRepos)
}

func TestBadgerStorePersists(t *testing.T) {
	dir := t.TempDir()

	store, err := repositories.OpenBadgerStore(dir)
	require.NoError(t, err)
	comment := repotest.NewComment("p1", "survives restart")
	require.NoError(t, store.Posts.Create(repotest.NewPost("p1")))
	require.NoError(t, store.Comments.Create(comment))
	require.NoError(t, store.Close())

	store, err = repositories.OpenBadgerStore(dir)
	require.NoError(t, err)
	defer store.Close()

	list, err := store.Comments.ListByPost("p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, comment.ID, list[0].ID)

	require.NoError(t, store.Clear())
	list, err = store.Comments.ListByPost("p1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBadgerStoreBackupRestore(t *testing.T) {
	src, err := repositories.OpenBadgerStore("")
	require.NoError(t, err)
	defer src.Close()

	require.NoError(t, src.Posts.Create(repotest.NewPost("p1")))
	first := repotest.NewComment("p1", "first")
	require.NoError(t, src.Comments.Create(first))
	require.NoError(t, src.Comments.Create(repotest.NewComment("p1", "second")))

	var dump bytes.Buffer
	require.NoError(t, src.Backup(&dump))

	dst, err := repositories.OpenBadgerStore("")
	require.NoError(t, err)
	defer dst.Close()
	require.NoError(t, dst.Restore(&dump))

	list, err := dst.Comments.ListByPost("p1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "second", list[1].Content)

	third := repotest.NewComment("p1", "third")
	require.NoError(t, dst.Comments.Create(third))
	list, err = dst.Comments.ListByPost("p1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, third.ID, list[2].ID)
}

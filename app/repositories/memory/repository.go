// Package memory keeps posts and comments in process memory. Everything is
// lost when the process exits.
package memory

import (
	"sort"
	"sync"

	"postcard/app/models"
	"postcard/app/repositories"
)

type PostRepository struct {
	posts map[string]models.Post
	mutex sync.RWMutex
}

type CommentRepository struct {
	comments map[string]models.Comment
	// order holds comment IDs per post in creation order
	order map[string][]string
	mutex sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]models.Post)}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[string]models.Comment),
		order:    make(map[string][]string),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]models.Post)
}

// PostRepository implementation
func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; exists {
		return repositories.ErrAlreadyExists
	}
	stored := *post
	stored.Content = append([]models.ContentBlock(nil), post.Content...)
	m.posts[post.ID] = stored
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return &post, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		post := post
		posts = append(posts, &post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (m *CommentRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.comments = make(map[string]models.Comment)
	m.order = make(map[string][]string)
}

// CommentRepository implementation
func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[comment.ID]; exists {
		return repositories.ErrAlreadyExists
	}
	m.comments[comment.ID] = *comment
	m.order[comment.PostID] = append(m.order[comment.PostID], comment.ID)
	return nil
}

func (m *CommentRepository) GetByID(id string) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return &comment, nil
}

func (m *CommentRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment, exists := m.comments[id]
	if !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)

	ids := m.order[comment.PostID]
	kept := ids[:0]
	for _, other := range ids {
		if other != id {
			kept = append(kept, other)
		}
	}
	if len(kept) == 0 {
		delete(m.order, comment.PostID)
	} else {
		m.order[comment.PostID] = kept
	}
	return nil
}

func (m *CommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	ids := m.order[postID]
	comments := make([]*models.Comment, 0, len(ids))
	for _, id := range ids {
		comment := m.comments[id]
		comments = append(comments, &comment)
	}
	return comments, nil
}

package repositories

import (
	"errors"

	"postcard/app/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
}

// CommentRepository defines the interface for comment data access.
// ListByPost returns comments in the order they were created.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	ListByPost(postID string) ([]*models.Comment, error)
	Delete(id string) error
}

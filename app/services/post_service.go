package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"postcard/app/models"
	"postcard/app/repositories"
)

// PostService handles business logic for posts
type PostService struct {
	postRepo repositories.PostRepository
	logger   *slog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		logger:   slog.Default().With("service", "posts"),
	}
}

// CreatePost validates and stores a post
func (s *PostService) CreatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}
	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves all posts
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// LoadPosts reads a JSON array of posts and stores the ones not already
// present. It returns how many posts were added.
func (s *PostService) LoadPosts(r io.Reader) (int, error) {
	var posts []*models.Post
	if err := json.NewDecoder(r).Decode(&posts); err != nil {
		return 0, fmt.Errorf("decode posts: %w", err)
	}

	added := 0
	for _, post := range posts {
		err := s.CreatePost(post)
		if errors.Is(err, repositories.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return added, fmt.Errorf("post %q: %w", post.ID, err)
		}
		added++
	}
	s.logger.Info("posts loaded", "added", added, "total", len(posts))
	return added, nil
}

// LoadPostsFile is LoadPosts over the file at path.
func (s *PostService) LoadPostsFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return s.LoadPosts(f)
}

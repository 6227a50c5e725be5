package services

import (
	"errors"
	"fmt"
	"log/slog"

	"postcard/app/models"
	"postcard/app/repositories"
)

// ErrEmptyComment is returned when a comment is submitted without text.
var ErrEmptyComment = errors.New("comment text is empty")

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	logger      *slog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      slog.Default().With("service", "comments"),
	}
}

// CreateComment stores content as a new comment on the post. The text is
// kept exactly as submitted.
func (s *CommentService) CreateComment(postID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, ErrEmptyComment
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", postID, err)
	}

	comment := &models.Comment{Content: content}
	if err := comment.SetPost(post); err != nil {
		return nil, err
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	s.logger.Debug("comment created", "post_id", postID, "comment_id", comment.ID)
	return comment, nil
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id string) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListPostComments retrieves all comments for a post in display order
func (s *CommentService) ListPostComments(postID string) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post %s: %w", postID, err)
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// DeleteComment deletes a comment
func (s *CommentService) DeleteComment(id string) error {
	if err := s.commentRepo.Delete(id); err != nil {
		return fmt.Errorf("comment %s: %w", id, err)
	}
	s.logger.Debug("comment deleted", "comment_id", id)
	return nil
}

// DeletePostComment deletes a comment only if it belongs to postID.
func (s *CommentService) DeletePostComment(postID, id string) error {
	comment, err := s.GetComment(id)
	if err != nil {
		return fmt.Errorf("comment %s: %w", id, err)
	}
	if comment.PostID != postID {
		return fmt.Errorf("comment %s on post %s: %w", id, postID, repositories.ErrNotFound)
	}
	return s.DeleteComment(id)
}

// DeleteCommentsByContent removes every comment on the post whose text
// equals content. It returns the IDs actually removed, also when a later
// delete fails.
func (s *CommentService) DeleteCommentsByContent(postID, content string) ([]string, error) {
	comments, err := s.ListPostComments(postID)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, comment := range comments {
		if comment.Content != content {
			continue
		}
		if err := s.DeleteComment(comment.ID); err != nil {
			return removed, err
		}
		removed = append(removed, comment.ID)
	}
	return removed, nil
}

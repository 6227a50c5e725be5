package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		return fmt.Errorf("created_at: %w", ErrZeroTime)
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}

// SetPost attaches the comment to a post
func (c *Comment) SetPost(post *Post) error {
	if post == nil {
		return fmt.Errorf("post cannot be nil")
	}

	c.PostID = post.ID
	return nil
}

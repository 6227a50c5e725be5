package models

import "time"

// Content block kinds understood by the card renderer.
const (
	BlockParagraph = "paragraph"
	BlockLink      = "link"
)

// Author is the person a post is attributed to.
type Author struct {
	Name      string `json:"name" validate:"required,max=100"`
	AvatarURL string `json:"avatarUrl" validate:"required,url"`
	Role      string `json:"role" validate:"max=100"`
}

// ContentBlock is one rendered unit of a post body. Link blocks must carry
// the address they point to.
type ContentBlock struct {
	Type    string `json:"type" validate:"required"`
	Content string `json:"content"`
	Href    string `json:"href,omitempty" validate:"required_if=Type link"`
}

// Post represents a published post. It is immutable once stored.
type Post struct {
	ID          string         `json:"id" validate:"required,max=64,excludesall=:/"`
	Author      Author         `json:"author" validate:"required"`
	PublishedAt time.Time      `json:"publishedAt" validate:"required"`
	Content     []ContentBlock `json:"content" validate:"dive"`
}

// Comment represents a comment left on a post.
type Comment struct {
	ID        string    `json:"id" validate:"required,uuid"`
	PostID    string    `json:"postId" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

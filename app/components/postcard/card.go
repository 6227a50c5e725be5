// Package postcard implements the post card: a post header and body, a
// comment form with a pending draft, and the post's comment list.
//
// A Card holds one snapshot of card state and is driven by the form
// events of a single request. It is not safe for concurrent use; the
// comment store behind it is.
package postcard

import (
	"postcard/app/models"
	"postcard/app/services"
)

// CommentStore is the persistence the card writes through.
type CommentStore interface {
	CreateComment(postID, content string) (*models.Comment, error)
	DeletePostComment(postID, id string) error
	DeleteCommentsByContent(postID, content string) ([]string, error)
}

// Card is the state of one rendered post card.
type Card struct {
	post     *models.Post
	comments []*models.Comment
	store    CommentStore

	draft          string
	validation     string
	invalidMessage string
}

// New builds a card for post showing comments. invalidMessage is the
// text shown when an empty comment is submitted.
func New(post *models.Post, comments []*models.Comment, store CommentStore, invalidMessage string) *Card {
	return &Card{
		post:           post,
		comments:       append([]*models.Comment(nil), comments...),
		store:          store,
		invalidMessage: invalidMessage,
	}
}

// Post returns the post the card renders.
func (c *Card) Post() *models.Post { return c.post }

// Draft returns the pending comment text.
func (c *Card) Draft() string { return c.draft }

// ValidationMessage returns the message set by a failed submit, or "".
func (c *Card) ValidationMessage() string { return c.validation }

// Comments returns the comment list in display order.
func (c *Card) Comments() []*models.Comment {
	out := make([]*models.Comment, len(c.comments))
	copy(out, c.comments)
	return out
}

// ChangeDraft replaces the pending text and clears any validation message.
func (c *Card) ChangeDraft(text string) {
	c.draft = text
	c.validation = ""
}

// Invalid marks the draft as rejected.
func (c *Card) Invalid() {
	c.validation = c.invalidMessage
}

// SubmitEnabled reports whether the submit control is enabled.
func (c *Card) SubmitEnabled() bool {
	return len(c.draft) > 0
}

// Submit turns the draft into a comment. An empty draft is rejected with
// services.ErrEmptyComment and leaves the list untouched.
func (c *Card) Submit() (*models.Comment, error) {
	if c.draft == "" {
		c.Invalid()
		return nil, services.ErrEmptyComment
	}

	comment, err := c.store.CreateComment(c.post.ID, c.draft)
	if err != nil {
		return nil, err
	}
	c.comments = append(c.comments, comment)
	c.draft = ""
	c.validation = ""
	return comment, nil
}

// Delete removes the comment with the given ID. Unknown IDs leave the
// list as it is and return the store's error.
func (c *Card) Delete(id string) error {
	if err := c.store.DeletePostComment(c.post.ID, id); err != nil {
		return err
	}
	c.comments = removeComments(c.comments, func(comment *models.Comment) bool {
		return comment.ID == id
	})
	return nil
}

// DeleteByContent removes every comment whose text equals content. When
// the store fails partway the comments it did remove still leave the list.
func (c *Card) DeleteByContent(content string) error {
	removed, err := c.store.DeleteCommentsByContent(c.post.ID, content)
	gone := make(map[string]bool, len(removed))
	for _, id := range removed {
		gone[id] = true
	}
	c.comments = removeComments(c.comments, func(comment *models.Comment) bool {
		return gone[comment.ID]
	})
	return err
}

func removeComments(comments []*models.Comment, drop func(*models.Comment) bool) []*models.Comment {
	kept := make([]*models.Comment, 0, len(comments))
	for _, comment := range comments {
		if !drop(comment) {
			kept = append(kept, comment)
		}
	}
	return kept
}

package postcard

import (
	"time"

	"postcard/app/locale"
	"postcard/app/models"
)

// Block is a content block ready for rendering.
type Block struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

// IsLink reports whether the block renders inside an anchor.
func (b Block) IsLink() bool { return b.Href != "" }

// Timestamps are the three renderings of the publication instant.
type Timestamps struct {
	Absolute string `json:"absolute"`
	Relative string `json:"relative"`
	DateTime string `json:"datetime"`
}

// View is an immutable snapshot of a card, derived fresh for each render.
type View struct {
	PostID            string            `json:"postId"`
	Author            models.Author     `json:"author"`
	Published         Timestamps        `json:"published"`
	Blocks            []Block           `json:"blocks"`
	Comments          []*models.Comment `json:"comments"`
	Draft             string            `json:"draft"`
	SubmitEnabled     bool              `json:"submitEnabled"`
	ValidationMessage string            `json:"validationMessage,omitempty"`
	InvalidMessage    string            `json:"-"`
}

// Blocks derives the renderable blocks from the post content. Blocks of
// unknown kind are dropped.
func (c *Card) Blocks() []Block {
	blocks := make([]Block, 0, len(c.post.Content))
	for _, b := range c.post.Content {
		if !b.Renderable() {
			continue
		}
		block := Block{Text: b.Content}
		if b.IsLink() {
			block.Href = b.Href
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// Timestamps formats the publication time relative to now.
func (c *Card) Timestamps(loc *locale.Locale, now time.Time) Timestamps {
	published := c.post.PublishedAt
	return Timestamps{
		Absolute: loc.Absolute(published),
		Relative: loc.Relative(published, now),
		DateTime: locale.MachineReadable(published),
	}
}

// View derives the render snapshot.
func (c *Card) View(loc *locale.Locale, now time.Time) View {
	return View{
		PostID:            c.post.ID,
		Author:            c.post.Author,
		Published:         c.Timestamps(loc, now),
		Blocks:            c.Blocks(),
		Comments:          c.Comments(),
		Draft:             c.draft,
		SubmitEnabled:     c.SubmitEnabled(),
		ValidationMessage: c.validation,
		InvalidMessage:    c.invalidMessage,
	}
}

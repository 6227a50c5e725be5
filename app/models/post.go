package models

import "fmt"

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.PublishedAt.IsZero() {
		return fmt.Errorf("published_at: %w", ErrZeroTime)
	}

	return nil
}

// IsLink reports whether the block renders as an anchor.
func (b ContentBlock) IsLink() bool {
	return b.Type == BlockLink
}

// Renderable reports whether the block has a kind the card knows how to
// draw. Unknown kinds are skipped without error.
func (b ContentBlock) Renderable() bool {
	return b.Type == BlockParagraph || b.Type == BlockLink
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply on a post, optionally nested under another comment.
// PostID always references the root post, even for deeply nested replies, so
// a whole thread can be resolved without walking the tree. ParentID is nil
// for top-level comments.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID  // The root post this comment belongs to.
	UserID    uuid.UUID  // The author.
	ParentID  *uuid.UUID // Nil for top-level comments.
	Content   string
	Author    *User // Preloaded author, nil when not requested.
	CreatedAt time.Time
}

// IsTopLevel reports whether the comment sits directly on its post.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a top-level piece of content with optional ordered image attachments.
type Post struct {
	ID        uuid.UUID   // The unique identifier for the post.
	UserID    uuid.UUID   // The author.
	Content   string      // Post body text.
	Images    []PostImage // Ordered attachments, at most MaxPostImages.
	Author    *User       // Preloaded author, nil when not requested.
	CreatedAt time.Time
}

// MaxPostImages bounds the number of attachments accepted per post.
const MaxPostImages = 4

// PostImage is one hosted attachment of a post. Key identifies the object at
// the image host so it can be deleted when the post is.
type PostImage struct {
	ID       uuid.UUID
	PostID   uuid.UUID
	URL      string // Public URL served to clients.
	Key      string // Storage key at the image host.
	Position int    // Zero-based display order.
}

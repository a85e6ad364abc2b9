package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Images []PostImageModel `gorm:"foreignKey:PostID"`
	Author *UserModel       `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostImageModel mirrors the 'post_images' table. Position preserves the
// client's upload order.
type PostImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(512);not null"`
	Key       string    `gorm:"type:varchar(512);not null"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostImageModel) TableName() string {
	return "post_images"
}

// PostLikeModel mirrors the 'post_likes' table. The composite primary key
// makes a like idempotent at the schema level.
type PostLikeModel struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostLikeModel) TableName() string {
	return "post_likes"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// FollowModel mirrors the 'follows' table. The composite primary key keeps
// the relationship unique per direction.
type FollowModel struct {
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FolloweeID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "follows"
}

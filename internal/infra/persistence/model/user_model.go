package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Email, Username and PasswordHash are nullable because an OAuth signup has
// none of them until onboarding completes. The unique indexes still hold for
// non-null values.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        *string   `gorm:"type:varchar(255);unique"`
	Username     *string   `gorm:"type:varchar(100);unique"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	Bio          string    `gorm:"type:text"`
	AvatarURL    string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Accounts      []AccountModel      `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

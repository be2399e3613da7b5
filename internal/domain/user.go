package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxEmailLength    = 200
	MaxFullNameLength = 200
)

// User is a managed user record. IsActive=false marks a soft-deleted user;
// the email stays reserved either way.
type User struct {
	ID        uuid.UUID `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:200;not null" json:"email"`
	FullName  string    `gorm:"size:200;not null" json:"fullName"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// MarkDeleted soft deletes the user.
func (u *User) MarkDeleted(at time.Time) {
	u.IsActive = false
	u.UpdatedAt = at
}

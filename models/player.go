package models

import (
	"time"

	"gorm.io/gorm"
)

// Player is a local snapshot of the profile service's user table.
// Owned solely by this service; populated by the player sync worker.
// Authentication never happens here — the gateway hands us an already
// authenticated ExternalUserID.
type Player struct {
	ID                string     `gorm:"primaryKey" json:"id"`
	ExternalUserID    string     `gorm:"uniqueIndex;not null" json:"external_user_id"` // profile service UUID
	Username          string     `gorm:"index;not null" json:"username"`
	Email             string     `json:"email,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	LastSeen          *time.Time `json:"last_seen,omitempty"`
	IsBanned          bool       `json:"is_banned" gorm:"default:false"` // local arcade ban

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

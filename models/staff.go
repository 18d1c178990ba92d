package models

import "time"

// Staff is a panel user. There is no public sign-up; accounts are seeded
// from the environment on startup.
type Staff struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

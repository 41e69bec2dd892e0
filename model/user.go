package model

import "time"

// User 用户模型
// Username carries a unique index so concurrent registrations of the
// same name are rejected by the store, not by a check-then-insert race.
type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"` // 忽略JSON序列化
	CreatedAt    time.Time `json:"created_at"`
}

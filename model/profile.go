package model

import "time"

// Profile holds the public page of a user, keyed 1:1 by username.
// It is created inside the same transaction as the User row.
type Profile struct {
	ID       uint64    `gorm:"primarykey" json:"-"`
	Username string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Bio      string    `gorm:"type:text" json:"bio"`
	Photo    string    `gorm:"size:255" json:"photo"`
	JoinDate time.Time `json:"join_date"`
}

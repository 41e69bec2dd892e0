package model

import "time"

// Comment 评论模型
// Poster keeps the original denormalized username for display, but
// ownership checks on edit/delete go through PosterID.
type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"post_id"`
	Text      string    `gorm:"column:comment_text;type:text;not null" json:"comment_text"`
	Poster    string    `gorm:"not null;size:50" json:"poster"`
	PosterID  uint64    `gorm:"not null" json:"poster_id"`
	CreatedAt time.Time `json:"created"`
}

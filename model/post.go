package model

import "time"

// Post 博客文章模型
type Post struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null;size:200" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

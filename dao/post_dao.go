package dao

import (
	"blogr/model"

	"gorm.io/gorm"
)

type PostDAO struct {
	db *gorm.DB
}

// NewPostDAO 创建一个新的 PostDAO 实例
func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{db: db}
}

// Create 创建新文章
func (dao *PostDAO) Create(post *model.Post) error {
	return dao.db.Create(post).Error
}

// ListNewest returns all posts with their author, newest first.
// Unbounded on purpose; there is no pagination at this scale.
func (dao *PostDAO) ListNewest() ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.Preload("Author").Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// GetByID fetches one post with its author.
func (dao *PostDAO) GetByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := dao.db.Preload("Author").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update rewrites title and body of an existing post.
func (dao *PostDAO) Update(id uint64, title, body string) error {
	return dao.db.Model(&model.Post{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "body": body}).Error
}

// DeleteWithComments removes the post and every comment attached to it
// in one transaction, so no orphaned comments are left behind.
func (dao *PostDAO) DeleteWithComments(id uint64) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

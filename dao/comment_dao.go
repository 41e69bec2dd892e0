package dao

import (
	"blogr/model"

	"gorm.io/gorm"
)

type CommentDAO struct {
	db *gorm.DB
}

// NewCommentDAO 创建一个新的 CommentDAO 实例
func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{db: db}
}

// Create 创建新评论
func (dao *CommentDAO) Create(comment *model.Comment) error {
	return dao.db.Create(comment).Error
}

// ListByPost returns a post's comments in creation order.
func (dao *CommentDAO) ListByPost(postID uint64) ([]model.Comment, error) {
	var comments []model.Comment
	err := dao.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// GetByID fetches one comment.
func (dao *CommentDAO) GetByID(id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := dao.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateText rewrites the comment body.
func (dao *CommentDAO) UpdateText(id uint64, text string) error {
	return dao.db.Model(&model.Comment{}).Where("id = ?", id).
		Update("comment_text", text).Error
}

// Delete removes one comment.
func (dao *CommentDAO) Delete(id uint64) error {
	return dao.db.Delete(&model.Comment{}, id).Error
}

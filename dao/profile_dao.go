package dao

import (
	"blogr/model"

	"gorm.io/gorm"
)

type ProfileDAO struct {
	db *gorm.DB
}

// NewProfileDAO 创建一个新的 ProfileDAO 实例
func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{db: db}
}

// GetByUsername 根据用户名获取个人主页
func (dao *ProfileDAO) GetByUsername(username string) (*model.Profile, error) {
	var profile model.Profile
	err := dao.db.Where("username = ?", username).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update rewrites bio and photo reference of an existing profile.
func (dao *ProfileDAO) Update(username, bio, photo string) error {
	return dao.db.Model(&model.Profile{}).Where("username = ?", username).
		Updates(map[string]interface{}{"bio": bio, "photo": photo}).Error
}

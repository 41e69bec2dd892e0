package dao

import (
	"blogr/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO 创建一个新的 UserDAO 实例
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateWithProfile inserts the user and its companion profile row in a
// single transaction so a failed second insert cannot leave a user
// without a profile.
func (dao *UserDAO) CreateWithProfile(user *model.User, profile *model.Profile) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.Username = user.Username
		return tx.Create(profile).Error
	})
}

// GetByUsername 根据用户名获取用户
func (dao *UserDAO) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := dao.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID loads the full user row for a session's user id.
func (dao *UserDAO) GetByID(id uint64) (*model.User, error) {
	var user model.User
	err := dao.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

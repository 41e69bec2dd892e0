package service

import (
	"errors"
	"time"

	"blogr/config"
	"blogr/dao"
	"blogr/internal/auth"
	"blogr/model"
	"blogr/utils"

	"github.com/go-redis/redis/v8"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// AuthService bundles the user DAO, session storage and password helpers.
type AuthService struct {
	users   *dao.UserDAO
	Session *auth.SessionManager
}

// NewAuthService 创建一个新的 AuthService 实例
func NewAuthService(users *dao.UserDAO, rdb *redis.Client) *AuthService {
	return &AuthService{
		users:   users,
		Session: auth.NewSessionManager(rdb),
	}
}

// Register hashes the password and persists the user together with an
// empty companion profile. Username uniqueness is enforced by the store
// index; the resulting conflict error is mapped to ErrUserExists.
func (s *AuthService) Register(username, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := &model.User{Username: username, PasswordHash: hashed}
	profile := &model.Profile{JoinDate: time.Now()}
	if err := s.users.CreateWithProfile(user, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// Login handles username/password authentication and issues a session
// token. The two failure messages are deliberately distinct.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil || user.ID == 0 {
		return "", ErrUnknownUser
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrBadPassword
	}
	return auth.GenerateToken(user.ID)
}

// Logout clears the session unconditionally by blacklisting the token
// for the full configured lifetime.
func (s *AuthService) Logout(token string) error {
	ttl := time.Duration(config.GlobalConfig.JWT.Expire) * time.Second
	return s.Session.Invalidate(token, ttl)
}

package service

import (
	"fmt"
	"testing"

	"blogr/config"
	"blogr/dao"
	"blogr/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a unique in-memory database per test name so state
// cannot leak between tests through the shared cache. TranslateError
// lets the sqlite unique-constraint violation surface as
// gorm.ErrDuplicatedKey, the same way the mysql driver reports it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Profile{}, &model.Post{}, &model.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupConfig(t *testing.T) {
	t.Helper()
	config.GlobalConfig = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Expire: 3600},
	}
}

// seedUser registers an account through the real service so the stored
// hash is a valid bcrypt digest, then returns the persisted row.
func seedUser(t *testing.T, db *gorm.DB, username, password string) *model.User {
	t.Helper()
	svc := NewAuthService(dao.NewUserDAO(db), nil)
	if err := svc.Register(username, password); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	user, err := dao.NewUserDAO(db).GetByUsername(username)
	if err != nil {
		t.Fatalf("load seeded user: %v", err)
	}
	return user
}

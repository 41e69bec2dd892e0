package service

import (
	"errors"
	"testing"

	"blogr/dao"
	"blogr/internal/auth"
	"blogr/model"
)

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewAuthService(dao.NewUserDAO(db), nil)

	if err := svc.Register("alice", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := dao.NewUserDAO(db).GetByUsername("alice")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Fatalf("password stored in plaintext or empty: %q", user.PasswordHash)
	}

	profile, err := dao.NewProfileDAO(db).GetByUsername("alice")
	if err != nil {
		t.Fatalf("companion profile not stored: %v", err)
	}
	if profile.JoinDate.IsZero() {
		t.Fatal("join date not set at registration")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewAuthService(dao.NewUserDAO(db), nil)

	if err := svc.Register("alice", "secret123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := svc.Register("alice", "other-pass"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("duplicate register altered user count: %d", count)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewAuthService(dao.NewUserDAO(db), nil)

	if _, err := svc.Login("nobody", "whatever"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewAuthService(dao.NewUserDAO(db), nil)
	seedUser(t, db, "alice", "secret123")

	token, err := svc.Login("alice", "wrong-password")
	if !errors.Is(err, ErrBadPassword) {
		t.Fatalf("expected ErrBadPassword, got %v", err)
	}
	if token != "" {
		t.Fatalf("no session token should be issued, got %q", token)
	}
}

func TestLoginIssuesTokenForUser(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewAuthService(dao.NewUserDAO(db), nil)
	user := seedUser(t, db, "alice", "secret123")

	token, err := svc.Login("alice", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token user id = %d, want %d", claims.UserID, user.ID)
	}
}

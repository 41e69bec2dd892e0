package service

import (
	"errors"
	"testing"
	"time"

	"blogr/dao"
	"blogr/model"
)

func TestCreateAndGetPostRoundTrip(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewPostService(dao.NewPostDAO(db), dao.NewCommentDAO(db))
	author := seedUser(t, db, "alice", "secret123")

	created, err := svc.Create("hello", "first post", author)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(created.ID, false, nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "hello" || got.Body != "first post" || got.AuthorID != author.ID {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Author.Username != "alice" {
		t.Fatalf("author username not joined: %+v", got.Author)
	}
}

func TestCreatePostEmptyTitle(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewPostService(dao.NewPostDAO(db), dao.NewCommentDAO(db))
	author := seedUser(t, db, "alice", "secret123")

	if _, err := svc.Create("   ", "body", author); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}

	var count int64
	if err := db.Model(&model.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 0 {
		t.Fatalf("empty title inserted a row: %d", count)
	}
}

func TestGetPostNotFound(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewPostService(dao.NewPostDAO(db), dao.NewCommentDAO(db))
	user := seedUser(t, db, "alice", "secret123")

	for _, enforce := range []bool{false, true} {
		if _, err := svc.Get(9999, enforce, user); !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("enforce=%v: expected ErrPostNotFound, got %v", enforce, err)
		}
	}
}

func TestNonAuthorCannotUpdateOrDelete(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewPostService(dao.NewPostDAO(db), dao.NewCommentDAO(db))
	owner := seedUser(t, db, "bob", "secret123")
	intruder := seedUser(t, db, "alice", "secret123")

	post, err := svc.Create("bob's post", "body", owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(post.ID, "hijacked", "body", intruder); !errors.Is(err, ErrForbidden) {
		t.Fatalf("update: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(post.ID, intruder); !errors.Is(err, ErrForbidden) {
		t.Fatalf("delete: expected ErrForbidden, got %v", err)
	}

	got, err := svc.Get(post.ID, false, nil)
	if err != nil {
		t.Fatalf("post should survive: %v", err)
	}
	if got.Title != "bob's post" {
		t.Fatalf("post mutated by non-author: %q", got.Title)
	}
}

func TestAuthorUpdatesPost(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewPostService(dao.NewPostDAO(db), dao.NewCommentDAO(db))
	owner := seedUser(t, db, "bob", "secret123")

	post, err := svc.Create("draft", "v1", owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.Update(post.ID, "final", "v2", owner)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "final" || updated.Body != "v2" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.AuthorID != owner.ID {
		t.Fatalf("author id changed on update: %d", updated.AuthorID)
	}
}

func TestDeletePostCascadesComments(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	posts := NewPostService(dao.NewPostDAO(db), dao.NewCommentDAO(db))
	comments := NewCommentService(dao.NewCommentDAO(db), dao.NewPostDAO(db))
	owner := seedUser(t, db, "bob", "secret123")
	commenter := seedUser(t, db, "alice", "secret123")

	post, err := posts.Create("to delete", "body", owner)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := comments.Add(post.ID, "nice post", commenter); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	if err := posts.Delete(post.ID, owner); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	if err := db.Model(&model.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if count != 0 {
		t.Fatalf("orphaned comments left behind: %d", count)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	setupConfig(t)
	db := setupTestDB(t)
	svc := NewPostService(dao.NewPostDAO(db), dao.NewCommentDAO(db))
	author := seedUser(t, db, "alice", "secret123")

	first, err := svc.Create("first", "", author)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Force distinct timestamps regardless of clock resolution.
	if err := db.Model(first).Update("created_at", first.CreatedAt.Add(-time.Second)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}
	second, err := svc.Create("second", "", author)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	posts, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("want 2 posts, got %d", len(posts))
	}
	if posts[0].ID != second.ID || posts[1].ID != first.ID {
		t.Fatalf("posts not newest first: %d then %d", posts[0].ID, posts[1].ID)
	}
}

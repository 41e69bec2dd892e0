package service

import (
	"errors"
	"strings"

	"blogr/dao"
	"blogr/model"

	"gorm.io/gorm"
)

// PostService 文章业务逻辑
type PostService struct {
	posts    *dao.PostDAO
	comments *dao.CommentDAO
}

func NewPostService(posts *dao.PostDAO, comments *dao.CommentDAO) *PostService {
	return &PostService{posts: posts, comments: comments}
}

// List returns every post with its author, newest first.
func (s *PostService) List() ([]model.Post, error) {
	return s.posts.ListNewest()
}

// Create inserts a new post owned by the current user.
func (s *PostService) Create(title, body string, author *model.User) (*model.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	post := &model.Post{Title: title, Body: body, AuthorID: author.ID}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	post.Author = *author
	return post, nil
}

// Get is the single shared lookup used by show, update and delete.
// When enforceAuthor is set, a current user whose id does not match the
// post's author is rejected with ErrForbidden.
func (s *PostService) Get(id uint64, enforceAuthor bool, current *model.User) (*model.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if enforceAuthor && (current == nil || current.ID != post.AuthorID) {
		return nil, ErrForbidden
	}
	return post, nil
}

// Show returns a post together with its comments in creation order.
func (s *PostService) Show(id uint64) (*model.Post, []model.Comment, error) {
	post, err := s.Get(id, false, nil)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.comments.ListByPost(id)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

// Update rewrites title and body after the ownership gate.
func (s *PostService) Update(id uint64, title, body string, current *model.User) (*model.Post, error) {
	if _, err := s.Get(id, true, current); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if err := s.posts.Update(id, title, body); err != nil {
		return nil, err
	}
	return s.posts.GetByID(id)
}

// Delete removes the post and its comments after the ownership gate.
func (s *PostService) Delete(id uint64, current *model.User) error {
	if _, err := s.Get(id, true, current); err != nil {
		return err
	}
	return s.posts.DeleteWithComments(id)
}

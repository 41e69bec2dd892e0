package service

import (
	"errors"
	"strings"

	"blogr/dao"
	"blogr/model"

	"gorm.io/gorm"
)

// CommentService 评论业务逻辑
// Edit and delete require the current user to be the original poster,
// matched on the stored poster id rather than the display username.
type CommentService struct {
	comments *dao.CommentDAO
	posts    *dao.PostDAO
}

func NewCommentService(comments *dao.CommentDAO, posts *dao.PostDAO) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Add attaches a new comment to an existing post.
func (s *CommentService) Add(postID uint64, text string, current *model.User) (*model.Comment, error) {
	if _, err := s.posts.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	comment := &model.Comment{
		PostID:   postID,
		Text:     text,
		Poster:   current.Username,
		PosterID: current.ID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// getOwned loads a comment and applies the ownership gate. A comment id
// that exists under a different post is treated as not found.
func (s *CommentService) getOwned(id, postID uint64, current *model.User) (*model.Comment, error) {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.PostID != postID {
		return nil, ErrCommentNotFound
	}
	if current == nil || comment.PosterID != current.ID {
		return nil, ErrForbidden
	}
	return comment, nil
}

// Edit rewrites the comment text after the ownership gate.
func (s *CommentService) Edit(id, postID uint64, text string, current *model.User) (*model.Comment, error) {
	comment, err := s.getOwned(id, postID, current)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	if err := s.comments.UpdateText(id, text); err != nil {
		return nil, err
	}
	comment.Text = text
	return comment, nil
}

// Delete removes the comment after the ownership gate.
func (s *CommentService) Delete(id, postID uint64, current *model.User) error {
	if _, err := s.getOwned(id, postID, current); err != nil {
		return err
	}
	return s.comments.Delete(id)
}

package service

import (
	"errors"
	"io"

	"blogr/dao"
	"blogr/internal/storage"
	"blogr/model"

	"gorm.io/gorm"
)

// ProfileService 个人主页业务逻辑
type ProfileService struct {
	profiles *dao.ProfileDAO
	users    *dao.UserDAO
	store    storage.Store
}

func NewProfileService(profiles *dao.ProfileDAO, users *dao.UserDAO, store storage.Store) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, store: store}
}

// View returns the profile for display. Unknown usernames are a hard
// not-found rather than an empty page.
func (s *ProfileService) View(username string) (*model.Profile, error) {
	profile, err := s.profiles.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Update rewrites bio and, when a photo is supplied, stores it through
// the injected storage backend. Only the profile's own user may update.
// A nil photo reader keeps the existing photo reference.
func (s *ProfileService) Update(username, bio, photoName string, photo io.Reader, current *model.User) (*model.Profile, error) {
	target, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if current == nil || current.ID != target.ID {
		return nil, ErrForbidden
	}

	profile, err := s.View(username)
	if err != nil {
		return nil, err
	}

	photoRef := profile.Photo
	if photo != nil {
		if photoName == "" || !storage.AllowedImage(photoName) {
			return nil, ErrBadUpload
		}
		name := storage.SanitizeFilename(photoName)
		if name == "" {
			return nil, ErrBadUpload
		}
		photoRef, err = s.store.Save(name, photo)
		if err != nil {
			return nil, err
		}
	}

	if err := s.profiles.Update(username, bio, photoRef); err != nil {
		return nil, err
	}
	profile.Bio = bio
	profile.Photo = photoRef
	return profile, nil
}

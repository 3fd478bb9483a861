// Package profile assembles profile pages and applies the profile
// mutations: follow toggling, avatar/banner selection and single
// attribute updates.
package profile

import (
	"fmt"
	"slices"

	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
)

const dropsPerPage = 10

const (
	FollowLabel   = "Follow"
	UnfollowLabel = "Unfollow"
)

type Service struct {
	logger logger.Logger
	db     docstore.DB
}

// Page is one profile view: the profile's attributes, a page of its
// drops and the follow state relative to the viewing user.
type Page struct {
	User      docstore.UserProfile
	Drops     []docstore.DropView
	Followers int
	FollowBtn string
}

// FollowState is the outcome of a follow toggle.
type FollowState struct {
	Followers int
	FollowBtn string
}

func New(logger logger.Logger, db docstore.DB) *Service {
	return &Service{
		logger: logger,
		db:     db,
	}
}

// GetPage returns the profile of handle as seen by activeUser, with a
// page of the profile's drops starting at skip.
func (s *Service) GetPage(handle, activeUser string, skip int) (*Page, error) {
	user, err := s.db.GetUser(handle)
	if err != nil {
		return nil, err
	}

	if skip < 0 {
		skip = 0
	}
	drops, err := s.db.FindDropsByAuthor(handle, skip, dropsPerPage)
	if err != nil {
		return nil, err
	}

	return &Page{
		User:      *user,
		Drops:     drops,
		Followers: len(user.Followers),
		FollowBtn: followLabel(user, activeUser),
	}, nil
}

// ToggleFollow adds activeUser to handle's followers, or removes it if
// already present. Following yourself is rejected.
func (s *Service) ToggleFollow(activeUser, handle string) (*FollowState, error) {
	if activeUser == handle {
		return nil, fmt.Errorf("cannot follow yourself")
	}

	var state FollowState
	err := s.db.UpdateUser(handle, func(user *docstore.UserProfile) error {
		if i := slices.Index(user.Followers, activeUser); i >= 0 {
			user.Followers = slices.Delete(user.Followers, i, i+1)
		} else {
			user.Followers = append(user.Followers, activeUser)
		}
		state = FollowState{
			Followers: len(user.Followers),
			FollowBtn: followLabel(user, activeUser),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("follow toggled", "user", handle, "by", activeUser, "followers", state.Followers)
	return &state, nil
}

// SetAvatar records a new avatar image name for the user.
func (s *Service) SetAvatar(handle, avatar string) error {
	return s.db.UpdateUser(handle, func(user *docstore.UserProfile) error {
		user.Avatar = avatar
		return nil
	})
}

// SetBanner records a new banner URL. An empty value clears the
// banner.
func (s *Service) SetBanner(handle, banner string) error {
	return s.db.UpdateUser(handle, func(user *docstore.UserProfile) error {
		user.Banner = banner
		return nil
	})
}

// UpdateField sets one attribute field by its wire name.
func (s *Service) UpdateField(handle, field, value string) error {
	return s.db.UpdateUser(handle, func(user *docstore.UserProfile) error {
		return user.SetField(field, value)
	})
}

func followLabel(user *docstore.UserProfile, activeUser string) string {
	if slices.Contains(user.Followers, activeUser) {
		return UnfollowLabel
	}
	return FollowLabel
}

package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"socialchat/internal/common"
	"socialchat/internal/dbmysql"
)

// Profile is the public subset of a user exposed to chat consumers.
// Full user records never cross the chat boundary.
type Profile struct {
	UserID      uint64 `json:"user_id"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	DisplayName string `json:"display_name"`
	Location    string `json:"location"`
}

type UserRepository interface {
	ProfileByID(ctx context.Context, userID uint64) (*Profile, error)
	ProfilesByIDs(ctx context.Context, userIDs []uint64) ([]*Profile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) ProfileByID(ctx context.Context, userID uint64) (*Profile, error) {
	var u dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ? AND status = ?", userID, "active").First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Deleted or banned counterpart. Callers render the summary without a profile.
		return nil, nil
	}
	if err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "fetching user %d", userID)
	}
	return toProfile(&u), nil
}

func (r *userRepository) ProfilesByIDs(ctx context.Context, userIDs []uint64) ([]*Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var users []dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id IN ? AND status = ?", userIDs, "active").Find(&users).Error
	if err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, err, "fetching %d users", len(userIDs))
	}

	profiles := make([]*Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, toProfile(&users[i]))
	}
	return profiles, nil
}

func toProfile(u *dbmysql.User) *Profile {
	return &Profile{
		UserID:      u.UserID,
		Username:    u.Handle,
		Avatar:      u.Avatar,
		DisplayName: u.DisplayName,
		Location:    u.Location,
	}
}

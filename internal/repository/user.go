package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shopexperts/rewards/internal/model"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")

// UserRepository is a read-only view over the marketplace users table.
// Signup and profile management live in the user service.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
}

type user struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &user{db: db}
}

func (r *user) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

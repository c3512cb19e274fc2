package repository

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/domain"
)

// SubscribeRepository определяет методы для работы с подписками на авторов.
type SubscribeRepository interface {
	Add(ctx context.Context, userID, followingID int64) error
	Remove(ctx context.Context, userID, followingID int64) error
	Exists(ctx context.Context, userID, followingID int64) (bool, error)
	// ListFollowing возвращает авторов, на которых подписан пользователь.
	ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]domain.User, int64, error)
}

type subscribeRepository struct {
	db *gorm.DB
}

func NewSubscribeRepository(db *gorm.DB) SubscribeRepository {
	return &subscribeRepository{db: db}
}

func (r *subscribeRepository) Add(ctx context.Context, userID, followingID int64) error {
	return r.db.WithContext(ctx).Create(&domain.Subscribe{
		UserID:      userID,
		FollowingID: followingID,
	}).Error
}

func (r *subscribeRepository) Remove(ctx context.Context, userID, followingID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND following_id = ?", userID, followingID).
		Delete(&domain.Subscribe{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *subscribeRepository) Exists(ctx context.Context, userID, followingID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Subscribe{}).
		Where("user_id = ? AND following_id = ?", userID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscribeRepository) ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]domain.User, int64, error) {
	var users []domain.User
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.User{}).
		Joins("JOIN subscribes ON subscribes.following_id = users.id").
		Where("subscribes.user_id = ?", userID)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("users.id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

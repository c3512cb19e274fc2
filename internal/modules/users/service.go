package users

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

// Service содержит логику профилей и подписок на авторов.
type Service struct {
	users      repository.UserRepository
	subscribes repository.SubscribeRepository
	recipes    repository.RecipeRepository
}

func NewService(
	users repository.UserRepository,
	subscribes repository.SubscribeRepository,
	recipes repository.RecipeRepository,
) *Service {
	return &Service{
		users:      users,
		subscribes: subscribes,
		recipes:    recipes,
	}
}

// Get возвращает пользователя; is_subscribed — подписан ли requesterID
// (0 для анонимных запросов).
func (s *Service) Get(ctx context.Context, requesterID, id int64) (*UserResponse, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var isSubscribed bool
	if requesterID != 0 && requesterID != id {
		if isSubscribed, err = s.subscribes.Exists(ctx, requesterID, id); err != nil {
			return nil, err
		}
	}

	resp := ToUserResponse(u, isSubscribed)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, requesterID int64, limit, offset int) (*UserListResponse, error) {
	all, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	results := make([]UserResponse, 0, len(all))
	for i := range all {
		var isSubscribed bool
		if requesterID != 0 && requesterID != all[i].ID {
			if isSubscribed, err = s.subscribes.Exists(ctx, requesterID, all[i].ID); err != nil {
				return nil, err
			}
		}
		results = append(results, ToUserResponse(&all[i], isSubscribed))
	}

	return &UserListResponse{Count: total, Results: results}, nil
}

// Subscribe подписывает пользователя на автора. Подписка на себя
// и повторная подписка отклоняются до записи в хранилище.
func (s *Service) Subscribe(ctx context.Context, userID, followingID int64, recipesLimit int) (*SubscriptionResponse, error) {
	if userID == followingID {
		return nil, ErrSelfSubscribe
	}

	following, err := s.users.GetByID(ctx, followingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	exists, err := s.subscribes.Exists(ctx, userID, followingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	if err := s.subscribes.Add(ctx, userID, followingID); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	return s.toSubscription(ctx, following.ID, following, recipesLimit)
}

func (s *Service) Unsubscribe(ctx context.Context, userID, followingID int64) error {
	if _, err := s.users.GetByID(ctx, followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.subscribes.Remove(ctx, userID, followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotSubscribed
		}
		return err
	}
	return nil
}

// Subscriptions возвращает авторов, на которых подписан пользователь,
// с их рецептами; recipesLimit ограничивает число рецептов на автора.
func (s *Service) Subscriptions(ctx context.Context, userID int64, recipesLimit, limit, offset int) (*SubscriptionListResponse, error) {
	authors, total, err := s.subscribes.ListFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	results := make([]SubscriptionResponse, 0, len(authors))
	for i := range authors {
		sub, err := s.toSubscription(ctx, authors[i].ID, &authors[i], recipesLimit)
		if err != nil {
			return nil, err
		}
		results = append(results, *sub)
	}

	return &SubscriptionListResponse{Count: total, Results: results}, nil
}

func (s *Service) toSubscription(ctx context.Context, authorID int64, author *domain.User, recipesLimit int) (*SubscriptionResponse, error) {
	recipes, err := s.recipes.ListByAuthor(ctx, authorID, recipesLimit)
	if err != nil {
		return nil, err
	}

	count, err := s.recipes.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return &SubscriptionResponse{
		UserResponse: ToUserResponse(author, true),
		Recipes:      toRecipeBriefs(recipes),
		RecipesCount: count,
	}, nil
}

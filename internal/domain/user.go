package domain

import "time"

// User — пользователь сервиса. Каждый логин привязан к определенному email
// (составной уникальный индекс username+email, как и отдельные уникальные
// индексы на оба поля).
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex;uniqueIndex:idx_username_email"`
	Email        string    `json:"email" gorm:"size:254;not null;uniqueIndex;uniqueIndex:idx_username_email" validate:"required,email"`
	FirstName    string    `json:"first_name" gorm:"size:150"`
	LastName     string    `json:"last_name" gorm:"size:150"`
	PasswordHash string    `json:"-" gorm:"size:150;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// Subscribe — подписка пользователя на автора рецептов.
// Пара (user, following) уникальна; подписка на самого себя
// запрещается на уровне сервиса, а не хранилища.
type Subscribe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_following"`
	FollowingID int64     `json:"following_id" gorm:"not null;index;uniqueIndex:idx_user_following"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	User      *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Following *User `json:"-" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

func (Subscribe) TableName() string { return "subscribes" }

package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-users-posts-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&domain.User{}).Count(&total).Error
	return total, err
}

// ListWithAddress 按存储顺序取一页用户并带出地址（0 或 1 条）。
func (r *UserRepo) ListWithAddress(offset, limit int) ([]domain.User, error) {
	var users []domain.User
	err := r.db.Preload("Address").
		Order("id").
		Offset(offset).Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *UserRepo) Exists(id string) (bool, error) {
	var u domain.User
	err := r.db.Select("id").First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

package repo

import (
	"gorm.io/gorm"

	"go-users-posts-api/internal/domain"
)

type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) CountByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&domain.Post{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

func (r *PostRepo) ListByUser(userID string, offset, limit int) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.db.Where("user_id = ?", userID).
		Order("created_at, id").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepo) Create(p *domain.Post) error { return r.db.Create(p).Error }

func (r *PostRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Post{})
	return res.RowsAffected, res.Error
}

package domain

import "time"

// Post 的主键是字符串：新建的帖子用毫秒时间戳字符串，种子数据用 "1".."4"。
type Post struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"userId"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Post) TableName() string { return "posts" }

type PostRepository interface {
	CountByUser(userID string) (int64, error)
	ListByUser(userID string, offset, limit int) ([]Post, error)
	Create(p *Post) error
	// Delete 返回受影响行数，0 表示帖子不存在。
	Delete(id string) (int64, error)
}

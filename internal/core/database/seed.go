package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-users-posts-api/internal/domain"
)

// MigrateAndSeed 建表并在 users 为空时写入固定种子数据。
func MigrateAndSeed(db *gorm.DB, l *zap.Logger) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Address{}, &domain.Post{}); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if l != nil {
		l.Info("seeding initial data")
	}
	users := []domain.User{
		{
			ID: "1", Name: "Leanne Graham", Email: "Sincere@april.biz",
			Phone: "1-770-736-8031 x56442", Website: "hildegard.org",
			Address: &domain.Address{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", State: "NY", Zipcode: "92998-3874", Lat: "-37.3159", Lng: "81.1496"},
		},
		{
			ID: "2", Name: "Ervin Howell", Email: "Shanna@melissa.tv",
			Phone: "010-692-6593 x09125", Website: "anastasia.net",
			Address: &domain.Address{Street: "Victor Plains", Suite: "Suite 879", City: "Wisokyburgh", State: "GA", Zipcode: "90566-7771", Lat: "-43.9509", Lng: "-34.4618"},
		},
		{
			ID: "3", Name: "Clementine Bauch", Email: "Nathan@yesenia.net",
			Phone: "1-463-123-4447", Website: "ramiro.info",
			Address: &domain.Address{Street: "Douglas Extension", Suite: "Suite 847", City: "McKenziehaven", State: "CA", Zipcode: "59590-4157", Lat: "-68.6102", Lng: "-47.0653"},
		},
		{
			ID: "4", Name: "Patricia Lebsack", Email: "Julianne.OConner@kory.org",
			Phone: "493-170-9623 x156", Website: "kale.biz",
			Address: &domain.Address{Street: "Hoeger Mall", Suite: "Apt. 692", City: "South Elvis", State: "TX", Zipcode: "53919-4257", Lat: "40.3117", Lng: "71.0560"},
		},
	}
	posts := []domain.Post{
		{ID: "1", UserID: "1", Title: "sunt aut facere repellat provident occaecati excepturi optio reprehenderit", Body: "quia et suscipit\nsuscipit recusandae consequuntur expedita et cum\nreprehenderit molestiae ut ut quas totam\nnostrum rerum est autem sunt rem eveniet architecto"},
		{ID: "2", UserID: "1", Title: "qui est esse", Body: "est rerum tempore vitae\nsequi sint nihil reprehenderit dolor beatae ea dolores neque\nfugiat blanditiis voluptate porro vel nihil molestiae ut reiciendis\nqui aperiam non debitis possimus qui neque nisi nulla"},
		{ID: "3", UserID: "2", Title: "ea et jhon", Body: "voluptatem repellendus from aut dicta\nvoluptatem nihil et aut non\n rerum est autem sunt rem eveniet architecto"},
		{ID: "4", UserID: "3", Title: "magnam facilis autem", Body: "et vel officiis et at\nvoluptatem nihil et aut non\nreprehenderit molestiae ut ut quas totam\nnostrum rerum est autem sunt rem eveniet architecto"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		return tx.Create(&posts).Error
	})
}

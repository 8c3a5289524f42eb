package domain

// User 只通过种子数据写入，对外只读。
type User struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Name    string `gorm:"size:64;not null" json:"name"`
	Email   string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Phone   string `gorm:"size:32" json:"phone"`
	Website string `gorm:"size:191" json:"website"`

	// 关联：删用户时级联删地址和帖子
	Address *Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"address,omitempty"`
	Posts   []Post   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

type Address struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID  string `gorm:"size:36;not null;index" json:"-"`
	Street  string `gorm:"size:191" json:"street"`
	Suite   string `gorm:"size:64" json:"suite"`
	City    string `gorm:"size:64" json:"city"`
	State   string `gorm:"size:32" json:"state"`
	Zipcode string `gorm:"size:32" json:"zipcode"`
	Lat     string `gorm:"size:32" json:"lat"`
	Lng     string `gorm:"size:32" json:"lng"`
}

func (Address) TableName() string { return "addresses" }

type UserRepository interface {
	Count() (int64, error)
	ListWithAddress(offset, limit int) ([]User, error)
	Exists(id string) (bool, error)
}

package models

type User struct {
	Username  string `json:"username" gorm:"primaryKey" yaml:"username"`
	Name      string `json:"name" gorm:"not null" yaml:"name"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url" yaml:"avatar_url"`
}

func (User) TableName() string {
	return "users"
}

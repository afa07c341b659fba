package models

type Topic struct {
	Slug        string `json:"slug" gorm:"primaryKey" yaml:"slug"`
	Description string `json:"description" gorm:"not null" yaml:"description"`
}

func (Topic) TableName() string {
	return "topics"
}

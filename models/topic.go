package models

type Topic struct {
	Slug        string `json:"slug" gorm:"primaryKey"`
	Description string `json:"description" gorm:"not null"`
}

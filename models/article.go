package models

import "time"

type Article struct {
	ArticleID     int       `json:"article_id" gorm:"column:article_id;primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Topic         string    `json:"topic" gorm:"not null"`
	Author        string    `json:"author" gorm:"not null"`
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes" gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url"`

	// Derived by aggregation, never stored.
	CommentCount int `json:"comment_count" gorm:"->;-:migration"`

	TopicRef  *Topic `json:"-" gorm:"foreignKey:Topic;references:Slug"`
	AuthorRef *User  `json:"-" gorm:"foreignKey:Author;references:Username"`

	// Declared from this side so the foreign key (and its cascade) lands on
	// comments(article_id).
	Comments []Comment `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

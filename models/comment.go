package models

import "time"

type Comment struct {
	CommentID int       `json:"comment_id" gorm:"column:comment_id;primaryKey"`
	ArticleID int       `json:"article_id" gorm:"column:article_id;not null"`
	Author    string    `json:"author" gorm:"not null"`
	Body      string    `json:"body" gorm:"not null"`
	Votes     int       `json:"votes" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`

	AuthorRef *User `json:"-" gorm:"foreignKey:Author;references:Username"`
}

package models

type User struct {
	Username  string `json:"username" gorm:"primaryKey"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"-"`
}

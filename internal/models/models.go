package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"not null"                 json:"first_name"`
	LastName     string    `gorm:"not null"                 json:"last_name"`
	Username     string    `gorm:"unique;not null"          json:"username"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	Telephone    string    `json:"telephone"`
	Age          int       `gorm:"not null"                 json:"age"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AuthToken struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	JTI       string     `gorm:"unique;not null"          json:"jti"`
	UserID    uint       `gorm:"index;not null"           json:"user_id"`
	IssuedAt  int64      `gorm:"not null"                 json:"issued_at"`
	Revoked   bool       `gorm:"default:false"            json:"revoked"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

type Friendship struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SourceID  uint      `gorm:"index;not null"           json:"source_id"`
	TargetID  uint      `gorm:"index;not null"           json:"target_id"`
	Type      string    `json:"type"`
	Status    string    `gorm:"not null"                 json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Source *User `gorm:"foreignKey:SourceID" json:"-"`
	Target *User `gorm:"foreignKey:TargetID" json:"-"`
}

type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null"                 json:"title"`
	Content   string    `gorm:"not null"                 json:"content"`
	UserID    uint      `gorm:"index;not null"           json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"-"`
}

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Comment   string    `gorm:"not null"                 json:"comment"`
	UserID    uint      `gorm:"index;not null"           json:"user_id"`
	PostID    uint      `gorm:"index;not null"           json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Post *Post `gorm:"foreignKey:PostID" json:"-"`
}

type PostComment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"index;not null"           json:"post_id"`
	UserID    uint      `gorm:"index;not null"           json:"user_id"`
	Comment   string    `gorm:"not null"                 json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

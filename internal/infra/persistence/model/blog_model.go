package model

import "time"

// BlogModel mirrors the 'blogs' table.
type BlogModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	AuthorID  int64  `gorm:"not null;index"`
	Title     string `gorm:"type:varchar(255);not null"`
	Body      string `gorm:"type:text;not null"`
	IsPublic  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author   *UserModel     `gorm:"foreignKey:AuthorID"`
	Comments []CommentModel `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	Likes    []LikeModel    `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	AuthorID  int64  `gorm:"not null;index"`
	BlogID    int64  `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// LikeModel mirrors the 'likes' table. The composite unique index prevents
// duplicate likes for the same blog.
type LikeModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_likes_user_blog"`
	BlogID    int64 `gorm:"not null;uniqueIndex:idx_likes_user_blog"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// FollowModel mirrors the 'followers' table with a composite primary key.
type FollowModel struct {
	FollowerID  int64 `gorm:"primaryKey;autoIncrement:false"`
	FollowingID int64 `gorm:"primaryKey;autoIncrement:false"`

	Follower  *UserModel `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following *UserModel `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "followers"
}

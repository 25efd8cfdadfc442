// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"quill/internal/domain/entity"
)

// UserView is the outward representation of a user. The password hash never
// leaves the server.
type UserView struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName,omitempty"`
	PhotoURL   string    `json:"photoUrl,omitempty"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		PhotoURL:   user.PhotoURL,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

// CommentView decorates a comment with its author's public identity.
type CommentView struct {
	ID        int64     `json:"id"`
	BlogID    int64     `json:"blogId"`
	Body      string    `json:"body"`
	Author    *UserView `json:"author,omitempty"`
	AuthorID  int64     `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCommentView(comment *entity.Comment) *CommentView {
	if comment == nil {
		return nil
	}

	return &CommentView{
		ID:        comment.ID,
		BlogID:    comment.BlogID,
		Body:      comment.Body,
		Author:    toUserView(comment.Author),
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func toCommentViews(comments []*entity.Comment) []*CommentView {
	views := make([]*CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, toCommentView(comment))
	}

	return views
}

// BlogView is the outward representation of a blog post.
type BlogView struct {
	ID        int64          `json:"id"`
	AuthorID  int64          `json:"authorId"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	IsPublic  bool           `json:"isPublic"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Comments  []*CommentView `json:"comments,omitempty"`
	LikeCount *int64         `json:"likeCount,omitempty"`
	LikedByMe *bool          `json:"likedByMe,omitempty"`
}

func toBlogView(blog *entity.Blog) *BlogView {
	if blog == nil {
		return nil
	}

	view := &BlogView{
		ID:        blog.ID,
		AuthorID:  blog.AuthorID,
		Title:     blog.Title,
		Body:      blog.Body,
		IsPublic:  blog.IsPublic,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
	if len(blog.Comments) > 0 {
		view.Comments = toCommentViews(blog.Comments)
	}

	return view
}

func toBlogViews(blogs []*entity.Blog) []*BlogView {
	views := make([]*BlogView, 0, len(blogs))
	for _, blog := range blogs {
		views = append(views, toBlogView(blog))
	}

	return views
}

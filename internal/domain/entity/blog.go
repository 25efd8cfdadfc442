package entity

import "time"

// Blog is a post owned by exactly one user. Private blogs are visible only
// to their owner; every other access path treats them as absent or forbidden
// depending on the endpoint.
type Blog struct {
	ID        int64
	AuthorID  int64
	Title     string
	Body      string
	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Comments []*Comment // Populated on detail lookups.
	Author   *User      // Populated when author info is requested.
}

// Comment belongs to a public blog and to its author. Only the author may
// update or delete it.
type Comment struct {
	ID        int64
	AuthorID  int64
	BlogID    int64
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *User
}

// Like records that a user liked a blog. The (UserID, BlogID) pair is unique.
type Like struct {
	ID        int64
	UserID    int64
	BlogID    int64
	CreatedAt time.Time
}

// Follow is a directed social relation between two users.
type Follow struct {
	FollowerID  int64
	FollowingID int64

	Follower  *User
	Following *User
}

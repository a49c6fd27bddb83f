package domain

import (
	"time"
)

type CommentCreationData struct {
	News   NewsId
	Body   string
	Parent *CommentId // nil = top-level comment
}

type Comment struct {
	Id        CommentId
	News      NewsId
	Body      string
	Parent    *CommentId
	CreatedAt time.Time
}

// IsTopLevel reports whether the comment can accept replies.
// The thread shape is capped at two levels: replies never have replies.
func (c *Comment) IsTopLevel() bool {
	return c.Parent == nil
}

package service

import (
	"log/slog"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	"github.com/RigobertoEHA1/chismezon/internal/errors"
)

type CommentService interface {
	List(newsId domain.NewsId, parent *domain.CommentId) ([]domain.Comment, error)
	Create(data domain.CommentCreationData) (domain.Comment, error)
}

type Comment struct {
	storage   CommentStorage
	validator CommentBodyValidator
}

type CommentStorage interface {
	CreateComment(data domain.CommentCreationData) (domain.Comment, error)
	GetComment(id domain.CommentId) (domain.Comment, error)
	GetComments(newsId domain.NewsId, parent *domain.CommentId) ([]domain.Comment, error)
}

type CommentBodyValidator interface {
	Body(body string) (string, error)
}

func NewComment(storage CommentStorage, validator CommentBodyValidator) CommentService {
	return &Comment{storage, validator}
}

// List returns one level of the thread: top-level comments for a nil
// parent, the parent's direct replies otherwise. Storage failures degrade
// to an empty level rather than propagating; each level is independently
// refreshable by the caller.
func (c *Comment) List(newsId domain.NewsId, parent *domain.CommentId) ([]domain.Comment, error) {
	comments, err := c.storage.GetComments(newsId, parent)
	if err != nil {
		slog.Error("listing comments", "news", newsId, "err", err)
		return []domain.Comment{}, nil
	}
	return comments, nil
}

// Create adds a comment or a reply. Replies must point at an existing
// top-level comment of the same news item; the thread is capped at two
// levels by rule, not by accident, so a reply to a reply is rejected
// outright instead of being reparented.
//
// Rapid double submission is not deduplicated; the client disables its form
// while a submission is in flight and that is the only guard.
func (c *Comment) Create(data domain.CommentCreationData) (domain.Comment, error) {
	body, err := c.validator.Body(data.Body)
	if err != nil {
		return domain.Comment{}, err
	}
	data.Body = body

	if data.Parent != nil {
		parent, err := c.storage.GetComment(*data.Parent)
		if err != nil {
			return domain.Comment{}, err
		}
		if parent.News != data.News {
			return domain.Comment{}, &errors.ValidationError{Message: "parent comment belongs to another news item"}
		}
		if !parent.IsTopLevel() {
			return domain.Comment{}, &errors.ValidationError{Message: "replies to replies are not allowed"}
		}
	}

	return c.storage.CreateComment(data)
}

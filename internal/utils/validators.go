package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	"github.com/RigobertoEHA1/chismezon/internal/errors"
)

type NewsValidator struct{}

func (v *NewsValidator) Validate(title, body, author string) error {
	if strings.TrimSpace(title) == "" {
		return &errors.ValidationError{Message: "title must not be empty"}
	}
	if strings.TrimSpace(body) == "" {
		return &errors.ValidationError{Message: "body must not be empty"}
	}
	if strings.TrimSpace(author) == "" {
		return &errors.ValidationError{Message: "author must not be empty"}
	}
	return nil
}

type CommentValidator struct {
	MaxLength int
}

// Body trims the comment and enforces the non-empty and length rules.
// Returns the trimmed body that should be stored.
func (v *CommentValidator) Body(body string) (string, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "", &errors.ValidationError{Message: "comment must not be empty"}
	}
	if utf8.RuneCountInString(trimmed) > v.MaxLength {
		return "", &errors.ValidationError{Message: "comment is too long"}
	}
	return trimmed, nil
}

type ReactionValidator struct{}

func (v *ReactionValidator) Kind(kind string) error {
	if !domain.ValidReactionKind(kind) {
		return &errors.ValidationError{Message: "reaction must be like or dislike"}
	}
	return nil
}

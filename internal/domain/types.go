package domain

import "github.com/lib/pq"

type (
	NewsId    = string
	CommentId = string
	DeviceId  = string

	// Images is stored as a postgres text[] of public URLs
	Images = pq.StringArray
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

func ValidReactionKind(kind string) bool {
	return kind == ReactionLike || kind == ReactionDislike
}

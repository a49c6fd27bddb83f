package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type NewsCreationData struct {
	Title  string
	Body   string
	Author string
	Images Images
}

type NewsUpdateData struct {
	Title  string
	Body   string
	Author string
	Images Images
}

type News struct {
	Id        NewsId
	Title     string
	Body      string
	Images    Images
	Author    string
	CreatedAt time.Time
	Likes     int64
	Dislikes  int64
}

package handler

import (
	"time"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
)

// Wire types keep the column names of the original deployment so existing
// clients keep working.

type NewsRequest struct {
	Titulo    string   `json:"titulo" validate:"required"`
	Contenido string   `json:"contenido" validate:"required"`
	Autor     string   `json:"autor" validate:"required"`
	Imagenes  []string `json:"imagenes"`
}

type NewsResponse struct {
	Id            string    `json:"id"`
	Titulo        string    `json:"titulo"`
	Contenido     string    `json:"contenido"`
	ContenidoHTML string    `json:"contenido_html"`
	Imagenes      []string  `json:"imagenes"`
	Autor         string    `json:"autor"`
	Fecha         time.Time `json:"fecha"`
	Likes         int64     `json:"likes"`
	Dislikes      int64     `json:"dislikes"`
}

// FeedItemResponse is a NewsResponse whose body may be cut down to a
// preview; contenido_largo tells the client there is more to expand.
type FeedItemResponse struct {
	NewsResponse
	ContenidoLargo bool `json:"contenido_largo"`
}

type CommentRequest struct {
	Contenido       string            `json:"contenido" validate:"required"`
	ComentarioPadre *domain.CommentId `json:"comentario_padre"`
}

type CommentResponse struct {
	Id              string            `json:"id"`
	NoticiaId       string            `json:"noticia_id"`
	Contenido       string            `json:"contenido"`
	ContenidoHTML   string            `json:"contenido_html"`
	ComentarioPadre *domain.CommentId `json:"comentario_padre"`
	Fecha           time.Time         `json:"fecha"`
}

type ReactionRequest struct {
	Tipo string `json:"tipo" validate:"required"`
}

// Tipo is null when this device has not voted yet.
type ReactionResponse struct {
	Tipo *string `json:"tipo"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type UploadResponse struct {
	Url string `json:"url"`
}

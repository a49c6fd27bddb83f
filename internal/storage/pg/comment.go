package pg

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	internal_errors "github.com/RigobertoEHA1/chismezon/internal/errors"
)

func commentNotFound() error {
	return &internal_errors.ErrorWithStatusCode{Message: "Comment not found", StatusCode: http.StatusNotFound}
}

func (s *Storage) CreateComment(data domain.CommentCreationData) (domain.Comment, error) {
	comment := domain.Comment{
		Id:     uuid.NewString(),
		News:   data.News,
		Body:   data.Body,
		Parent: data.Parent,
	}
	createdTs := time.Now().UTC().Round(time.Microsecond)

	var parent sql.NullString
	if data.Parent != nil {
		parent = sql.NullString{String: *data.Parent, Valid: true}
	}

	err := s.db.QueryRow(`
	INSERT INTO comentarios(id, noticia_id, contenido, comentario_padre, fecha)
	VALUES($1, $2, $3, $4, $5)
	RETURNING fecha`,
		comment.Id, comment.News, comment.Body, parent, createdTs).Scan(&comment.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			// either the news item or the parent comment is gone
			if pqErr.Constraint == "comentarios_comentario_padre_fkey" {
				return domain.Comment{}, commentNotFound()
			}
			return domain.Comment{}, newsNotFound()
		}
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *Storage) GetComment(id domain.CommentId) (domain.Comment, error) {
	row := s.db.QueryRow(`
	SELECT id, noticia_id, contenido, comentario_padre, fecha
	FROM comentarios
	WHERE id = $1`, id)

	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, commentNotFound()
		}
		return domain.Comment{}, err
	}
	return comment, nil
}

// GetComments returns one level of the thread, oldest first.
// A nil parent selects the top-level comments of the news item; a non-nil
// parent selects its direct replies only.
func (s *Storage) GetComments(newsId domain.NewsId, parent *domain.CommentId) ([]domain.Comment, error) {
	var rows *sql.Rows
	var err error
	if parent == nil {
		rows, err = s.db.Query(`
		SELECT id, noticia_id, contenido, comentario_padre, fecha
		FROM comentarios
		WHERE noticia_id = $1 AND comentario_padre IS NULL
		ORDER BY fecha ASC`, newsId)
	} else {
		rows, err = s.db.Query(`
		SELECT id, noticia_id, contenido, comentario_padre, fecha
		FROM comentarios
		WHERE noticia_id = $1 AND comentario_padre = $2
		ORDER BY fecha ASC`, newsId, *parent)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (domain.Comment, error) {
	var comment domain.Comment
	var parent sql.NullString
	if err := row.Scan(&comment.Id, &comment.News, &comment.Body, &parent, &comment.CreatedAt); err != nil {
		return domain.Comment{}, err
	}
	if parent.Valid {
		comment.Parent = &parent.String
	}
	return comment, nil
}

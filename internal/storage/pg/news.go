package pg

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	internal_errors "github.com/RigobertoEHA1/chismezon/internal/errors"
)

func newsNotFound() error {
	return &internal_errors.ErrorWithStatusCode{Message: "News item not found", StatusCode: http.StatusNotFound}
}

func (s *Storage) CreateNews(data domain.NewsCreationData) (domain.News, error) {
	news := domain.News{
		Id:     uuid.NewString(),
		Title:  data.Title,
		Body:   data.Body,
		Images: data.Images,
		Author: data.Author,
	}
	createdTs := time.Now().UTC().Round(time.Microsecond) // database anyway rounds to microsecond
	err := s.db.QueryRow(`
	INSERT INTO noticias(id, titulo, contenido, imagenes, autor, fecha)
	VALUES($1, $2, $3, $4, $5, $6)
	RETURNING fecha`,
		news.Id, news.Title, news.Body, news.Images, news.Author, createdTs).Scan(&news.CreatedAt)
	if err != nil {
		return domain.News{}, err
	}
	return news, nil
}

func (s *Storage) GetNews(id domain.NewsId) (domain.News, error) {
	var news domain.News
	err := s.db.QueryRow(`
	SELECT id, titulo, contenido, imagenes, autor, fecha, likes, dislikes
	FROM noticias
	WHERE id = $1`, id).Scan(
		&news.Id, &news.Title, &news.Body, &news.Images, &news.Author, &news.CreatedAt, &news.Likes, &news.Dislikes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.News{}, newsNotFound()
		}
		return domain.News{}, err
	}
	return news, nil
}

// GetAllNews returns the feed, newest first.
func (s *Storage) GetAllNews() ([]domain.News, error) {
	rows, err := s.db.Query(`
	SELECT id, titulo, contenido, imagenes, autor, fecha, likes, dislikes
	FROM noticias
	ORDER BY fecha DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var news []domain.News
	for rows.Next() {
		var n domain.News
		if err := rows.Scan(&n.Id, &n.Title, &n.Body, &n.Images, &n.Author, &n.CreatedAt, &n.Likes, &n.Dislikes); err != nil {
			return nil, err
		}
		news = append(news, n)
	}
	return news, rows.Err()
}

func (s *Storage) UpdateNews(id domain.NewsId, data domain.NewsUpdateData) error {
	result, err := s.db.Exec(`
	UPDATE noticias SET
		titulo = $2,
		contenido = $3,
		imagenes = $4,
		autor = $5
	WHERE id = $1`, id, data.Title, data.Body, data.Images, data.Author)
	if err != nil {
		return err
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return newsNotFound()
	}
	return nil
}

// DeleteNews removes the row; comments and reactions cascade.
func (s *Storage) DeleteNews(id domain.NewsId) error {
	result, err := s.db.Exec(`DELETE FROM noticias WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return newsNotFound()
	}
	return nil
}

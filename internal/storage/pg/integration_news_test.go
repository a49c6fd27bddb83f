package pg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	internal_errors "github.com/RigobertoEHA1/chismezon/internal/errors"
)

func TestCreateNews(t *testing.T) {
	testBegins := time.Now().UTC()

	news, err := storage.CreateNews(domain.NewsCreationData{
		Title:  "Titulo",
		Body:   "Cuerpo",
		Author: "Ana",
		Images: domain.Images{"/media/a.jpg", "/media/b.jpg"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, storage.DeleteNews(news.Id)) })

	assert.NotEmpty(t, news.Id)
	assert.True(t, !news.CreatedAt.Before(testBegins), "creation time %v should not be before test begins %v", news.CreatedAt, testBegins)

	stored, err := storage.GetNews(news.Id)
	require.NoError(t, err)
	assert.Equal(t, "Titulo", stored.Title)
	assert.Equal(t, "Cuerpo", stored.Body)
	assert.Equal(t, "Ana", stored.Author)
	assert.Equal(t, domain.Images{"/media/a.jpg", "/media/b.jpg"}, stored.Images)
	assert.Zero(t, stored.Likes)
	assert.Zero(t, stored.Dislikes)
}

func TestGetNews(t *testing.T) {
	t.Run("unknown id is a 404", func(t *testing.T) {
		_, err := storage.GetNews("00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.True(t, internal_errors.Is[*internal_errors.ErrorWithStatusCode](err))
	})
}

func TestGetAllNews(t *testing.T) {
	first := mustCreateNews(t)
	second := mustCreateNews(t)

	news, err := storage.GetAllNews()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(news), 2)

	// newest first
	for i := 1; i < len(news); i++ {
		assert.True(t, !news[i-1].CreatedAt.Before(news[i].CreatedAt), "feed must be ordered newest first")
	}

	ids := make(map[domain.NewsId]bool, len(news))
	for _, n := range news {
		ids[n.Id] = true
	}
	assert.True(t, ids[first.Id])
	assert.True(t, ids[second.Id])
}

func TestUpdateNews(t *testing.T) {
	news := mustCreateNews(t)

	t.Run("fields are replaced", func(t *testing.T) {
		err := storage.UpdateNews(news.Id, domain.NewsUpdateData{
			Title:  "Nuevo titulo",
			Body:   "Nuevo cuerpo",
			Author: "Benito",
			Images: domain.Images{"/media/c.jpg"},
		})
		require.NoError(t, err)

		stored, err := storage.GetNews(news.Id)
		require.NoError(t, err)
		assert.Equal(t, "Nuevo titulo", stored.Title)
		assert.Equal(t, "Benito", stored.Author)
		assert.Equal(t, domain.Images{"/media/c.jpg"}, stored.Images)
	})

	t.Run("counters survive an edit", func(t *testing.T) {
		_, created, err := storage.CastReaction(newDeviceId(), news.Id, domain.ReactionLike)
		require.NoError(t, err)
		require.True(t, created)

		err = storage.UpdateNews(news.Id, domain.NewsUpdateData{Title: "t", Body: "b", Author: "a"})
		require.NoError(t, err)

		stored, err := storage.GetNews(news.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stored.Likes)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		err := storage.UpdateNews("00000000-0000-0000-0000-000000000000", domain.NewsUpdateData{Title: "t", Body: "b", Author: "a"})
		require.Error(t, err)
		assert.True(t, internal_errors.Is[*internal_errors.ErrorWithStatusCode](err))
	})
}

func TestDeleteNews(t *testing.T) {
	t.Run("delete cascades to comments and reactions", func(t *testing.T) {
		news, err := storage.CreateNews(domain.NewsCreationData{Title: "t", Body: "b", Author: "a"})
		require.NoError(t, err)

		comment, err := storage.CreateComment(domain.CommentCreationData{News: news.Id, Body: "hola"})
		require.NoError(t, err)
		_, _, err = storage.CastReaction(newDeviceId(), news.Id, domain.ReactionDislike)
		require.NoError(t, err)

		require.NoError(t, storage.DeleteNews(news.Id))

		_, err = storage.GetNews(news.Id)
		assert.Error(t, err)
		_, err = storage.GetComment(comment.Id)
		assert.Error(t, err)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		err := storage.DeleteNews("00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.True(t, internal_errors.Is[*internal_errors.ErrorWithStatusCode](err))
	})
}

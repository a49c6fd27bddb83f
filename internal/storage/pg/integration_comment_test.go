package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	internal_errors "github.com/RigobertoEHA1/chismezon/internal/errors"
)

func TestCreateComment(t *testing.T) {
	news := mustCreateNews(t)

	t.Run("top-level comment", func(t *testing.T) {
		comment, err := storage.CreateComment(domain.CommentCreationData{News: news.Id, Body: "hola"})
		require.NoError(t, err)
		assert.NotEmpty(t, comment.Id)
		assert.Nil(t, comment.Parent)

		stored, err := storage.GetComment(comment.Id)
		require.NoError(t, err)
		assert.Equal(t, "hola", stored.Body)
		assert.Equal(t, news.Id, stored.News)
		assert.True(t, stored.IsTopLevel())
	})

	t.Run("reply keeps its parent", func(t *testing.T) {
		parent, err := storage.CreateComment(domain.CommentCreationData{News: news.Id, Body: "padre"})
		require.NoError(t, err)

		reply, err := storage.CreateComment(domain.CommentCreationData{News: news.Id, Body: "hijo", Parent: &parent.Id})
		require.NoError(t, err)

		stored, err := storage.GetComment(reply.Id)
		require.NoError(t, err)
		require.NotNil(t, stored.Parent)
		assert.Equal(t, parent.Id, *stored.Parent)
		assert.False(t, stored.IsTopLevel())
	})

	t.Run("comment on a missing news item is a 404", func(t *testing.T) {
		_, err := storage.CreateComment(domain.CommentCreationData{News: "00000000-0000-0000-0000-000000000000", Body: "hola"})
		require.Error(t, err)
		var e *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 404, e.StatusCode)
	})

	t.Run("reply to a missing parent is a 404", func(t *testing.T) {
		missingParent := "00000000-0000-0000-0000-00000000000a"
		_, err := storage.CreateComment(domain.CommentCreationData{News: news.Id, Body: "hola", Parent: &missingParent})
		require.Error(t, err)
		var e *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 404, e.StatusCode)
	})
}

func TestGetComment(t *testing.T) {
	t.Run("unknown id is a 404", func(t *testing.T) {
		_, err := storage.GetComment("00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.True(t, internal_errors.Is[*internal_errors.ErrorWithStatusCode](err))
	})
}

func TestGetComments(t *testing.T) {
	news := mustCreateNews(t)

	first, err := storage.CreateComment(domain.CommentCreationData{News: news.Id, Body: "primero"})
	require.NoError(t, err)
	second, err := storage.CreateComment(domain.CommentCreationData{News: news.Id, Body: "segundo"})
	require.NoError(t, err)
	reply, err := storage.CreateComment(domain.CommentCreationData{News: news.Id, Body: "respuesta", Parent: &first.Id})
	require.NoError(t, err)

	t.Run("top level lists only parentless comments, oldest first", func(t *testing.T) {
		comments, err := storage.GetComments(news.Id, nil)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, first.Id, comments[0].Id)
		assert.Equal(t, second.Id, comments[1].Id)
	})

	t.Run("replies list only the direct children of their parent", func(t *testing.T) {
		comments, err := storage.GetComments(news.Id, &first.Id)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, reply.Id, comments[0].Id)

		comments, err = storage.GetComments(news.Id, &second.Id)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("another news item sees none of them", func(t *testing.T) {
		other := mustCreateNews(t)
		comments, err := storage.GetComments(other.Id, nil)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

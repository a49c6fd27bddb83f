package handler

import (
	"net/http"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	"github.com/RigobertoEHA1/chismezon/internal/utils"
)

func (h *Handler) newsResponse(news domain.News) NewsResponse {
	return NewsResponse{
		Id:            news.Id,
		Titulo:        news.Title,
		Contenido:     news.Body,
		ContenidoHTML: h.render.HTML(news.Body),
		Imagenes:      news.Images,
		Autor:         news.Author,
		Fecha:         news.CreatedAt,
		Likes:         news.Likes,
		Dislikes:      news.Dislikes,
	}
}

// feedItemResponse truncates long bodies for the feed; the detail endpoint
// serves the full text.
func (h *Handler) feedItemResponse(news domain.News) FeedItemResponse {
	long := utf8.RuneCountInString(news.Body) > h.cfg.Public.PreviewLength
	if long {
		runes := []rune(news.Body)
		news.Body = string(runes[:h.cfg.Public.PreviewLength]) + "..."
	}
	return FeedItemResponse{NewsResponse: h.newsResponse(news), ContenidoLargo: long}
}

func (h *Handler) GetAllNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.news.GetAll()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]FeedItemResponse, 0, len(news))
	for _, n := range news {
		response = append(response, h.feedItemResponse(n))
	}
	writeJSON(w, response)
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	news, err := h.news.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, h.newsResponse(news))
}

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var body NewsRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	news, err := h.news.Create(domain.NewsCreationData{
		Title:  body.Titulo,
		Body:   body.Contenido,
		Author: body.Autor,
		Images: body.Imagenes,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, h.newsResponse(news))
}

func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body NewsRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err := h.news.Update(id, domain.NewsUpdateData{
		Title:  body.Titulo,
		Body:   body.Contenido,
		Author: body.Autor,
		Images: body.Imagenes,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.news.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

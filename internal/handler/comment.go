package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	"github.com/RigobertoEHA1/chismezon/internal/utils"
)

func (h *Handler) commentResponse(comment domain.Comment) CommentResponse {
	return CommentResponse{
		Id:              comment.Id,
		NoticiaId:       comment.News,
		Contenido:       comment.Body,
		ContenidoHTML:   h.render.HTML(comment.Body),
		ComentarioPadre: comment.Parent,
		Fecha:           comment.CreatedAt,
	}
}

// GetComments lists one level of the thread: without the padre query
// parameter the top-level comments, with it the direct replies of that
// comment. Levels refresh independently on the client.
func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	newsId := mux.Vars(r)["id"]

	var parent *domain.CommentId
	if padre := r.URL.Query().Get("padre"); padre != "" {
		parent = &padre
	}

	comments, err := h.comment.List(newsId, parent)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		response = append(response, h.commentResponse(c))
	}
	writeJSON(w, response)
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	newsId := mux.Vars(r)["id"]

	var body CommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Create(domain.CommentCreationData{
		News:   newsId,
		Body:   body.Contenido,
		Parent: body.ComentarioPadre,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, h.commentResponse(comment))
}

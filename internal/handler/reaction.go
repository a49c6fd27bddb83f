package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RigobertoEHA1/chismezon/internal/middleware"
	"github.com/RigobertoEHA1/chismezon/internal/utils"
)

// GetReaction tells the calling device whether it already voted on this
// news item, and how.
func (h *Handler) GetReaction(w http.ResponseWriter, r *http.Request) {
	newsId := mux.Vars(r)["id"]
	device := middleware.GetDeviceId(r)
	if device == "" {
		http.Error(w, "Missing device identity", http.StatusBadRequest)
		return
	}

	reaction, ok, err := h.reaction.Get(device, newsId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := ReactionResponse{}
	if ok {
		response.Tipo = &reaction.Kind
	}
	writeJSON(w, response)
}

// CastReaction casts this device's single like-or-dislike. A second cast
// is a no-op that answers with the vote already on record; the client
// re-fetches the news item for fresh counts either way.
func (h *Handler) CastReaction(w http.ResponseWriter, r *http.Request) {
	newsId := mux.Vars(r)["id"]
	device := middleware.GetDeviceId(r)
	if device == "" {
		http.Error(w, "Missing device identity", http.StatusBadRequest)
		return
	}

	var body ReactionRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reaction, err := h.reaction.Cast(device, newsId, body.Tipo)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, ReactionResponse{Tipo: &reaction.Kind})
}

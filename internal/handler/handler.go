package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/RigobertoEHA1/chismezon/internal/config"
	"github.com/RigobertoEHA1/chismezon/internal/render"
	"github.com/RigobertoEHA1/chismezon/internal/service"
)

type Handler struct {
	news     service.NewsService
	comment  service.CommentService
	reaction service.ReactionService
	auth     service.AuthService
	media    service.MediaService
	render   *render.TextProcessor
	cfg      *config.Config
	pinger   Pinger
}

// Pinger is what the health endpoint needs from the storage.
type Pinger interface {
	Ping() error
}

func New(
	news service.NewsService,
	comment service.CommentService,
	reaction service.ReactionService,
	auth service.AuthService,
	media service.MediaService,
	textProcessor *render.TextProcessor,
	cfg *config.Config,
	pinger Pinger,
) *Handler {
	return &Handler{news, comment, reaction, auth, media, textProcessor, cfg, pinger}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "err", err)
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "err", err)
	}
}

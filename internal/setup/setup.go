package setup

import (
	"github.com/RigobertoEHA1/chismezon/internal/config"
	"github.com/RigobertoEHA1/chismezon/internal/handler"
	"github.com/RigobertoEHA1/chismezon/internal/jwt"
	"github.com/RigobertoEHA1/chismezon/internal/render"
	"github.com/RigobertoEHA1/chismezon/internal/service"
	"github.com/RigobertoEHA1/chismezon/internal/storage/fs"
	"github.com/RigobertoEHA1/chismezon/internal/storage/pg"
	"github.com/RigobertoEHA1/chismezon/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Media   *fs.Storage
	Handler *handler.Handler
	Jwt     *jwt.Jwt
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.Bootstrap(); err != nil {
		return nil, err
	}

	media, err := fs.New(cfg.Public.MediaRoot, cfg.Public.MediaBaseURL)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	news := service.NewNews(storage, &utils.NewsValidator{})
	comment := service.NewComment(storage, &utils.CommentValidator{MaxLength: cfg.Public.MaxCommentLength})
	reaction := service.NewReaction(storage, &utils.ReactionValidator{})
	auth := service.NewAuth(storage, jwtService)
	mediaService := service.NewMedia(media, cfg.Public.MaxImageDimension)

	h := handler.New(news, comment, reaction, auth, mediaService, render.New(), cfg, storage)

	return &Dependencies{
		Storage: storage,
		Media:   media,
		Handler: h,
		Jwt:     jwtService,
		Config:  cfg,
	}, nil
}

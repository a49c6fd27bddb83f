package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/RigobertoEHA1/chismezon/internal/config"
	"github.com/RigobertoEHA1/chismezon/internal/logger"
	"github.com/RigobertoEHA1/chismezon/internal/router"
	"github.com/RigobertoEHA1/chismezon/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		slog.Error("setting up dependencies", "err", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	addr := cfg.Public.ListenAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	slog.Info("Server started", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

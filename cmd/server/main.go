package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/handler"
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/internal/server"
	"github.com/MKhiriev/upload-sink/internal/service"
	"github.com/MKhiriev/upload-sink/internal/store"
	"github.com/MKhiriev/upload-sink/internal/workers"
	"github.com/MKhiriev/upload-sink/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("upload-sink")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.VersionOr(cfg.App.Version)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	log.Info().
		Str("version", services.AppInfoService.GetAppVersion(context.Background())).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("services created")

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(services.UploadService, cfg.Workers, log)

	srv, err := server.NewServer(handlers, services, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

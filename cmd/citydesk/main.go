package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/totegamma/citydesk/client"
	"github.com/totegamma/citydesk/internal/config"
	"github.com/totegamma/citydesk/internal/infra/database"
	"github.com/totegamma/citydesk/internal/infra/gateway"
	"github.com/totegamma/citydesk/internal/infra/repository"
	"github.com/totegamma/citydesk/internal/present/rest"
	"github.com/totegamma/citydesk/internal/service"
	"github.com/totegamma/citydesk/internal/trace"
	"github.com/totegamma/citydesk/internal/usecase"
)

func main() {
	configPath := flag.String("c", "config/config.yaml", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		shutdown, err := trace.Setup(ctx, "citydesk", conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to setup tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		slog.Error("failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = database.MigratePostgres(db)
	if err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	origin := client.New(conf.Server.OriginURL)
	assets := gateway.NewAssetGateway(origin, mc)
	defer assets.Close()

	signal := service.NewSignalService(rdb)
	render := service.NewRenderService(origin, conf.Site.BusinessTemplate)

	articleRepo := repository.NewArticleRepository(db)
	businessRepo := repository.NewBusinessRepository(db)

	handler := rest.NewHandler(
		usecase.NewArticleUsecase(articleRepo, signal),
		usecase.NewBusinessUsecase(businessRepo),
		usecase.NewAssetUsecase(assets),
		render,
		signal,
	)

	e := rest.NewRouter(conf.Site, handler)
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("citydesk"))
	}

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}
